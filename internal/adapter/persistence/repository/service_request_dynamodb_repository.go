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

const kindServiceRequest = "service_request"

type ServiceRequestDynamoRepository struct {
	ddb    *dynamodb.Client
	t      table
	guards table
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

type serviceRequestItem struct {
	ID             string                  `dynamodbav:"id"`
	Kind           string                  `dynamodbav:"kind"`
	RequestNumber  string                  `dynamodbav:"request_number"`
	ProjectID      string                  `dynamodbav:"project_id"`
	Title          string                  `dynamodbav:"title"`
	Description    string                  `dynamodbav:"description"`
	Priority       string                  `dynamodbav:"priority"`
	Status         string                  `dynamodbav:"status"`
	RequestType    string                  `dynamodbav:"request_type"`
	Location       *entities.SiteLocation  `dynamodbav:"location"`
	RequestedBy    string                  `dynamodbav:"requested_by"`
	AssignedTo     string                  `dynamodbav:"assigned_to"`
	ScheduledDate  string                  `dynamodbav:"scheduled_date"`
	CompletionDate string                  `dynamodbav:"completion_date"`
	Attachments    []entities.Attachment   `dynamodbav:"attachments"`
	Comments       []entities.Comment      `dynamodbav:"comments"`
	History        []entities.HistoryEntry `dynamodbav:"history"`
	Renditions     []string                `dynamodbav:"renditions"`
	CreatedAt      string                  `dynamodbav:"created_at"`
	UpdatedAt      string                  `dynamodbav:"updated_at"`
}

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client, tables TableNames) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:    ddb,
		t:      table{ddb: ddb, name: tableName(tables.ServiceRequests, "SERVICE_REQUESTS_TABLE", "service_requests")},
		guards: table{ddb: ddb, name: tableName(tables.Identifiers, "IDENTIFIERS_TABLE", "identifiers")},
	}
}

// Create stores the request and claims its request number in one transaction.
func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	put, err := r.t.putItem(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	guard, err := r.guards.claim(guardRequestNumber, sr.RequestNumber, sr.ID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{put, guard},
	})
	if err != nil {
		if _, ok := cancelledAt(err); ok {
			return entities.ServiceRequest{}, interfaces.ErrDuplicateKey
		}
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	var it serviceRequestItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) List(ctx context.Context, f interfaces.ServiceRequestFilter) ([]entities.ServiceRequest, int, error) {
	in, err := newFilter().
		eq("project_id", f.ProjectID).
		eq("requested_by", f.RequestedBy).
		eq("assigned_to", f.AssignedTo).
		eq("status", string(f.Status)).
		eq("priority", string(f.Priority)).
		scan()
	if err != nil {
		return nil, 0, err
	}
	all, err := r.scan(ctx, in)
	if err != nil {
		return nil, 0, err
	}
	out := all[:0]
	for _, sr := range all {
		if f.Search != "" && !containsFold(sr.RequestNumber+" "+sr.Title+" "+sr.Description, f.Search) {
			continue
		}
		out = append(out, sr)
	}
	result, total := page(out, f.PageQuery)
	return result, total, nil
}

func (r *ServiceRequestDynamoRepository) ListByProject(ctx context.Context, projectID string) ([]entities.ServiceRequest, error) {
	in, err := newFilter().eq("project_id", projectID).scan()
	if err != nil {
		return nil, err
	}
	return r.scan(ctx, in)
}

// Update writes the admin-editable fields. Status, history and lists are left untouched.
func (r *ServiceRequestDynamoRepository) Update(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	return r.update(ctx, sr.ID,
		"SET #title = :title, #desc = :desc, #priority = :priority, #type = :type, #location = :location, "+
			"#assigned = :assigned, #scheduled = :scheduled, #updated = :now",
		"",
		map[string]string{
			"#title":     "title",
			"#desc":      "description",
			"#priority":  "priority",
			"#type":      "request_type",
			"#location":  "location",
			"#assigned":  "assigned_to",
			"#scheduled": "scheduled_date",
			"#updated":   "updated_at",
		},
		map[string]interface{}{
			":title":     sr.Title,
			":desc":      sr.Description,
			":priority":  string(sr.Priority),
			":type":      string(sr.RequestType),
			":location":  sr.Location,
			":assigned":  sr.AssignedTo,
			":scheduled": formatTimePtr(sr.ScheduledDate),
			":now":       formatTime(sr.UpdatedAt),
		})
}

// Delete removes the request and frees its request number.
func (r *ServiceRequestDynamoRepository) Delete(ctx context.Context, sr entities.ServiceRequest) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			r.t.deleteItem(sr.ID),
			r.guards.release(guardRequestNumber, sr.RequestNumber),
		},
	})
	return err
}

func (r *ServiceRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, expected entities.RequestStatus, entry entities.HistoryEntry, completedAt *time.Time) (entities.ServiceRequest, error) {
	expr := "SET #status = :to, #history = list_append(#history, :entry), #updated = :now"
	names := map[string]string{"#status": "status", "#history": "history", "#updated": "updated_at"}
	values := map[string]interface{}{
		":to":       entry.Status,
		":expected": string(expected),
		":entry":    []entities.HistoryEntry{entry},
		":now":      formatTime(entry.ChangedAt),
	}
	if completedAt != nil {
		expr += ", #completed = :completed"
		names["#completed"] = "completion_date"
		values[":completed"] = formatTime(*completedAt)
	}
	sr, err := r.update(ctx, id, expr, "#status = :expected", names, values)
	if errors.Is(err, errConditionFailed) {
		return entities.ServiceRequest{}, interfaces.ErrStaleStatus
	}
	return sr, err
}

func (r *ServiceRequestDynamoRepository) AppendComment(ctx context.Context, id string, c entities.Comment) (entities.ServiceRequest, error) {
	return r.append(ctx, id, "comments", []entities.Comment{c})
}

func (r *ServiceRequestDynamoRepository) AppendAttachments(ctx context.Context, id string, atts []entities.Attachment) (entities.ServiceRequest, error) {
	return r.append(ctx, id, "attachments", atts)
}

// LinkRendition appends renditionID unless the request already references it.
func (r *ServiceRequestDynamoRepository) LinkRendition(ctx context.Context, id string, renditionID string) (entities.ServiceRequest, error) {
	sr, err := r.update(ctx, id,
		"SET #renditions = list_append(#renditions, :rendition), #updated = :now",
		"NOT contains(#renditions, :one)",
		map[string]string{"#renditions": "renditions", "#updated": "updated_at"},
		map[string]interface{}{
			":rendition": []string{renditionID},
			":one":       renditionID,
			":now":       formatTime(utcNow()),
		})
	if errors.Is(err, errConditionFailed) {
		return r.GetByID(ctx, id)
	}
	return sr, err
}

// LatestIdentifier reads the newest request from the kind/created_at index.
func (r *ServiceRequestDynamoRepository) LatestIdentifier(ctx context.Context) (string, error) {
	return r.t.latestIdentifier(ctx, kindServiceRequest, "request_number")
}

func (r *ServiceRequestDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.ServiceRequest, error) {
	raw, err := r.t.scanAll(ctx, in)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll[serviceRequestItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceRequest, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceRequestItem(it))
	}
	newestFirst(out, func(sr entities.ServiceRequest) time.Time { return sr.CreatedAt }, func(sr entities.ServiceRequest) string { return sr.ID })
	return out, nil
}

func (r *ServiceRequestDynamoRepository) append(ctx context.Context, id, attr string, list interface{}) (entities.ServiceRequest, error) {
	return r.update(ctx, id,
		"SET #list = list_append(#list, :items), #updated = :now",
		"",
		map[string]string{"#list": attr, "#updated": "updated_at"},
		map[string]interface{}{":items": list, ":now": formatTime(utcNow())})
}

func (r *ServiceRequestDynamoRepository) update(
	ctx context.Context,
	id string,
	expr string,
	cond string,
	names map[string]string,
	values map[string]interface{},
) (entities.ServiceRequest, error) {
	var it serviceRequestItem
	found, err := r.t.update(ctx, id, expr, cond, names, values, &it)
	if err != nil || !found {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

// unlinkRendition builds the transactional removal of renditionID from the request's list.
// The index is re-checked inside the transaction.
func (r *ServiceRequestDynamoRepository) unlinkRendition(sr entities.ServiceRequest, renditionID string) (types.TransactWriteItem, bool) {
	for i, id := range sr.Renditions {
		if id != renditionID {
			continue
		}
		path := "#renditions[" + itoa(i) + "]"
		values, _ := marshalValues(map[string]interface{}{":rendition": renditionID})
		return types.TransactWriteItem{Update: &types.Update{
			TableName:                 aws.String(r.t.name),
			Key:                       idKey(sr.ID),
			UpdateExpression:          aws.String("REMOVE " + path),
			ConditionExpression:       aws.String(path + " = :rendition"),
			ExpressionAttributeNames:  map[string]string{"#renditions": "renditions"},
			ExpressionAttributeValues: values,
		}}, true
	}
	return types.TransactWriteItem{}, false
}

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	return serviceRequestItem{
		ID:             sr.ID,
		Kind:           kindServiceRequest,
		RequestNumber:  sr.RequestNumber,
		ProjectID:      sr.ProjectID,
		Title:          sr.Title,
		Description:    sr.Description,
		Priority:       string(sr.Priority),
		Status:         string(sr.Status),
		RequestType:    string(sr.RequestType),
		Location:       sr.Location,
		RequestedBy:    sr.RequestedBy,
		AssignedTo:     sr.AssignedTo,
		ScheduledDate:  formatTimePtr(sr.ScheduledDate),
		CompletionDate: formatTimePtr(sr.CompletionDate),
		Attachments:    nonNil(sr.Attachments),
		Comments:       nonNil(sr.Comments),
		History:        nonNil(sr.History),
		Renditions:     nonNil(sr.Renditions),
		CreatedAt:      formatTime(sr.CreatedAt),
		UpdatedAt:      formatTime(sr.UpdatedAt),
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:             it.ID,
		RequestNumber:  it.RequestNumber,
		ProjectID:      it.ProjectID,
		Title:          it.Title,
		Description:    it.Description,
		Priority:       entities.Priority(it.Priority),
		Status:         entities.RequestStatus(it.Status),
		RequestType:    entities.RequestType(it.RequestType),
		Location:       it.Location,
		RequestedBy:    it.RequestedBy,
		AssignedTo:     it.AssignedTo,
		ScheduledDate:  parseTimePtr(it.ScheduledDate),
		CompletionDate: parseTimePtr(it.CompletionDate),
		Attachments:    it.Attachments,
		Comments:       it.Comments,
		History:        it.History,
		Renditions:     it.Renditions,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
