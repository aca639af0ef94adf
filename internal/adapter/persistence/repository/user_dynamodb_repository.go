package repository

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

type UserDynamoRepository struct {
	ddb    *dynamodb.Client
	t      table
	guards table
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

type userItem struct {
	ID           string `dynamodbav:"id"`
	FirstName    string `dynamodbav:"first_name"`
	LastName     string `dynamodbav:"last_name"`
	Email        string `dynamodbav:"email"`
	Phone        string `dynamodbav:"phone"`
	PasswordHash string `dynamodbav:"password_hash"`
	Role         string `dynamodbav:"role"`
	Active       bool   `dynamodbav:"active"`
	LastLogin    string `dynamodbav:"last_login"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

func NewUserDynamoRepository(ddb *dynamodb.Client, tables TableNames) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:    ddb,
		t:      table{ddb: ddb, name: tableName(tables.Users, "USERS_TABLE", "users")},
		guards: table{ddb: ddb, name: tableName(tables.Identifiers, "IDENTIFIERS_TABLE", "identifiers")},
	}
}

// Create stores the user and claims the lowercased email in one transaction.
func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	u.Email = strings.ToLower(u.Email)
	put, err := r.t.putItem(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}
	guard, err := r.guards.claim(guardEmail, u.Email, u.ID)
	if err != nil {
		return entities.User{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{put, guard},
	})
	if err != nil {
		if _, ok := cancelledAt(err); ok {
			return entities.User{}, interfaces.ErrDuplicateKey
		}
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var it userItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

// GetByEmail resolves the email guard to its owner.
func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var g guardItem
	found, err := r.guards.get(ctx, guardKey(guardEmail, email), &g)
	if err != nil || !found {
		return entities.User{}, err
	}
	return r.GetByID(ctx, g.Owner)
}

// List queries the role index, or scans the table when role is empty.
func (r *UserDynamoRepository) List(ctx context.Context, role entities.Role) ([]entities.User, error) {
	var (
		raw []map[string]types.AttributeValue
		err error
	)
	if role == "" {
		raw, err = r.t.scanAll(ctx, &dynamodb.ScanInput{})
	} else {
		raw, err = r.t.queryAll(ctx, &dynamodb.QueryInput{
			IndexName:                 aws.String(roleIndex),
			KeyConditionExpression:    aws.String("#role = :role"),
			ExpressionAttributeNames:  map[string]string{"#role": "role"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":role": str(string(role))},
		})
	}
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll[userItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(items))
	for _, it := range items {
		out = append(out, fromUserItem(it))
	}
	newestFirst(out, func(u entities.User) time.Time { return u.CreatedAt }, func(u entities.User) string { return u.ID })
	return out, nil
}

// Update replaces the stored user. A changed email moves its guard in the same transaction.
func (r *UserDynamoRepository) Update(ctx context.Context, u entities.User) (entities.User, error) {
	u.Email = strings.ToLower(u.Email)
	current, err := r.GetByID(ctx, u.ID)
	if err != nil || current.ID == "" {
		return entities.User{}, err
	}
	av, err := marshalValues(map[string]interface{}{
		":first":  u.FirstName,
		":last":   u.LastName,
		":email":  u.Email,
		":phone":  u.Phone,
		":hash":   u.PasswordHash,
		":role":   string(u.Role),
		":active": u.Active,
		":now":    formatTime(u.UpdatedAt),
	})
	if err != nil {
		return entities.User{}, err
	}
	items := []types.TransactWriteItem{{Update: &types.Update{
		TableName: aws.String(r.t.name),
		Key:       idKey(u.ID),
		UpdateExpression: aws.String("SET #first = :first, #last = :last, #email = :email, #phone = :phone, " +
			"#hash = :hash, #role = :role, #active = :active, #updated = :now"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#first":   "first_name",
			"#last":    "last_name",
			"#email":   "email",
			"#phone":   "phone",
			"#hash":    "password_hash",
			"#role":    "role",
			"#active":  "active",
			"#updated": "updated_at",
		},
		ExpressionAttributeValues: av,
	}}}
	if current.Email != u.Email {
		guard, err := r.guards.claim(guardEmail, u.Email, u.ID)
		if err != nil {
			return entities.User{}, err
		}
		items = append(items, r.guards.release(guardEmail, current.Email), guard)
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if failed, ok := cancelledAt(err); ok {
			if len(failed) > 0 && failed[0] == 0 {
				return entities.User{}, nil
			}
			return entities.User{}, interfaces.ErrDuplicateKey
		}
		return entities.User{}, err
	}
	return r.GetByID(ctx, u.ID)
}

func (r *UserDynamoRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	var it userItem
	_, err := r.t.update(ctx, id,
		"SET #last_login = :at",
		"",
		map[string]string{"#last_login": "last_login"},
		map[string]interface{}{":at": formatTime(at)},
		&it)
	return err
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Active:       u.Active,
		LastLogin:    formatTimePtr(u.LastLogin),
		CreatedAt:    formatTime(u.CreatedAt),
		UpdatedAt:    formatTime(u.UpdatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		FirstName:    it.FirstName,
		LastName:     it.LastName,
		Email:        it.Email,
		Phone:        it.Phone,
		PasswordHash: it.PasswordHash,
		Role:         entities.Role(it.Role),
		Active:       it.Active,
		LastLogin:    parseTimePtr(it.LastLogin),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
