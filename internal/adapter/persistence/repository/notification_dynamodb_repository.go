package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

type NotificationDynamoRepository struct {
	t table
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

type notificationItem struct {
	ID        string              `dynamodbav:"id"`
	Recipient string              `dynamodbav:"recipient"`
	Title     string              `dynamodbav:"title"`
	Message   string              `dynamodbav:"message"`
	Type      string              `dynamodbav:"type"`
	Read      bool                `dynamodbav:"read"`
	ReadAt    string              `dynamodbav:"read_at"`
	RelatedTo *entities.RelatedTo `dynamodbav:"related_to"`
	Link      string              `dynamodbav:"link"`
	CreatedAt string              `dynamodbav:"created_at"`
}

func NewNotificationDynamoRepository(ddb *dynamodb.Client, tables TableNames) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		t: table{ddb: ddb, name: tableName(tables.Notifications, "NOTIFICATIONS_TABLE", "notifications")},
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	if err := r.t.putNew(ctx, toNotificationItem(n)); err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Notification{}, interfaces.ErrDuplicateKey
		}
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	var it notificationItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

// ListByRecipient queries the recipient/created_at index newest first.
func (r *NotificationDynamoRepository) ListByRecipient(ctx context.Context, recipient string, unreadOnly bool, q interfaces.PageQuery) ([]entities.Notification, int, error) {
	all, err := r.byRecipient(ctx, recipient, unreadOnly)
	if err != nil {
		return nil, 0, err
	}
	out, total := page(all, q)
	return out, total, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string, at time.Time) (entities.Notification, error) {
	var it notificationItem
	found, err := r.t.update(ctx, id,
		"SET #read = :true, #read_at = :at",
		"",
		map[string]string{"#read": "read", "#read_at": "read_at"},
		map[string]interface{}{":true": true, ":at": formatTime(at)},
		&it)
	if err != nil || !found {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

// MarkAllRead flips every unread notification of recipient and returns how many changed.
func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, recipient string, at time.Time) (int, error) {
	unread, err := r.byRecipient(ctx, recipient, true)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range unread {
		var it notificationItem
		found, err := r.t.update(ctx, n.ID,
			"SET #read = :true, #read_at = :at",
			"#read = :false",
			map[string]string{"#read": "read", "#read_at": "read_at"},
			map[string]interface{}{":true": true, ":false": false, ":at": formatTime(at)},
			&it)
		if errors.Is(err, errConditionFailed) {
			continue
		}
		if err != nil {
			return count, err
		}
		if found {
			count++
		}
	}
	return count, nil
}

func (r *NotificationDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *NotificationDynamoRepository) byRecipient(ctx context.Context, recipient string, unreadOnly bool) ([]entities.Notification, error) {
	in := &dynamodb.QueryInput{
		IndexName:                aws.String(recipientCreatedIndex),
		KeyConditionExpression:   aws.String("#recipient = :recipient"),
		ExpressionAttributeNames: map[string]string{"#recipient": "recipient"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":recipient": str(recipient),
		},
		ScanIndexForward: aws.Bool(false),
	}
	if unreadOnly {
		in.FilterExpression = aws.String("#read = :false")
		in.ExpressionAttributeNames["#read"] = "read"
		in.ExpressionAttributeValues[":false"] = &types.AttributeValueMemberBOOL{Value: false}
	}
	raw, err := r.t.queryAll(ctx, in)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll[notificationItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Notification, 0, len(items))
	for _, it := range items {
		out = append(out, fromNotificationItem(it))
	}
	newestFirst(out, func(n entities.Notification) time.Time { return n.CreatedAt }, func(n entities.Notification) string { return n.ID })
	return out, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:        n.ID,
		Recipient: n.Recipient,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Read:      n.Read,
		ReadAt:    formatTimePtr(n.ReadAt),
		RelatedTo: n.RelatedTo,
		Link:      n.Link,
		CreatedAt: formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:        it.ID,
		Recipient: it.Recipient,
		Title:     it.Title,
		Message:   it.Message,
		Type:      entities.NotificationType(it.Type),
		Read:      it.Read,
		ReadAt:    parseTimePtr(it.ReadAt),
		RelatedTo: it.RelatedTo,
		Link:      it.Link,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
