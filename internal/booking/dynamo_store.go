package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoMeetingStore persists meetings in a DynamoDB table keyed by
// contact_id.
type DynamoMeetingStore struct {
	client dynamoAPI
	table  string
}

// NewDynamoMeetingStore creates a DynamoDB-backed meeting store.
func NewDynamoMeetingStore(client *dynamodb.Client, table string) *DynamoMeetingStore {
	if client == nil {
		panic("booking: dynamodb client cannot be nil")
	}
	if table == "" {
		panic("booking: table name cannot be empty")
	}
	return &DynamoMeetingStore{client: client, table: table}
}

type meetingRecord struct {
	ContactID string `dynamodbav:"contact_id"`
	ID        string `dynamodbav:"id"`
	Email     string `dynamodbav:"email"`
	Summary   string `dynamodbav:"summary"`
	Location  string `dynamodbav:"location"`
	Start     string `dynamodbav:"start"`
	End       string `dynamodbav:"end"`
	BookedAt  string `dynamodbav:"booked_at"`
}

// Put stores a meeting, failing with ErrMeetingExists if the contact already
// has one. The conditional write makes the one-meeting-per-contact rule hold
// under concurrent bookers.
func (s *DynamoMeetingStore) Put(ctx context.Context, meeting *Meeting) error {
	item, err := attributevalue.MarshalMap(toRecord(meeting))
	if err != nil {
		return fmt.Errorf("booking: marshal meeting: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(contact_id)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrMeetingExists
		}
		return fmt.Errorf("booking: put meeting: %w", err)
	}
	return nil
}

// GetByContactID retrieves the meeting booked for a contact.
func (s *DynamoMeetingStore) GetByContactID(ctx context.Context, contactID string) (*Meeting, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"contact_id": &types.AttributeValueMemberS{Value: contactID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("booking: get meeting: %w", err)
	}
	if out.Item == nil {
		return nil, ErrMeetingNotFound
	}

	var record meetingRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, fmt.Errorf("booking: unmarshal meeting: %w", err)
	}
	return fromRecord(record)
}

// List scans the table and returns every booked meeting.
func (s *DynamoMeetingStore) List(ctx context.Context) ([]*Meeting, error) {
	var meetings []*Meeting
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("booking: scan meetings: %w", err)
		}

		var records []meetingRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
			return nil, fmt.Errorf("booking: unmarshal meetings: %w", err)
		}
		for _, record := range records {
			meeting, err := fromRecord(record)
			if err != nil {
				return nil, err
			}
			meetings = append(meetings, meeting)
		}

		if out.LastEvaluatedKey == nil {
			return meetings, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toRecord(m *Meeting) meetingRecord {
	return meetingRecord{
		ContactID: m.ContactID,
		ID:        m.ID,
		Email:     m.Email,
		Summary:   m.Summary,
		Location:  m.Location,
		Start:     m.Start.Format(timeLayout),
		End:       m.End.Format(timeLayout),
		BookedAt:  m.BookedAt.Format(timeLayout),
	}
}

func fromRecord(r meetingRecord) (*Meeting, error) {
	start, err := parseRecordTime(r.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseRecordTime(r.End)
	if err != nil {
		return nil, err
	}
	bookedAt, err := parseRecordTime(r.BookedAt)
	if err != nil {
		return nil, err
	}
	return &Meeting{
		ID:        r.ID,
		ContactID: r.ContactID,
		Email:     r.Email,
		Summary:   r.Summary,
		Location:  r.Location,
		Start:     start,
		End:       end,
		BookedAt:  bookedAt,
	}, nil
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func parseRecordTime(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("booking: parse stored time %q: %w", value, err)
	}
	return t, nil
}

var _ MeetingStore = (*DynamoMeetingStore)(nil)
