package repository

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

const kindRendition = "rendition"

type RenditionDynamoRepository struct {
	ddb      *dynamodb.Client
	t        table
	guards   table
	requests *ServiceRequestDynamoRepository
}

var _ interfaces.IRenditionRepository = (*RenditionDynamoRepository)(nil)

type renditionItem struct {
	ID                string                  `dynamodbav:"id"`
	Kind              string                  `dynamodbav:"kind"`
	Folio             string                  `dynamodbav:"folio"`
	ServiceRequestID  string                  `dynamodbav:"service_request_id"`
	ProjectID         string                  `dynamodbav:"project_id"`
	Description       string                  `dynamodbav:"description"`
	Technician        string                  `dynamodbav:"technician"`
	Status            string                  `dynamodbav:"status"`
	Location          *entities.SiteLocation  `dynamodbav:"location"`
	WorkDetails       entities.WorkDetails    `dynamodbav:"work_details"`
	Expenses          []entities.Expense      `dynamodbav:"expenses"`
	Attachments       []entities.Attachment   `dynamodbav:"attachments"`
	ReviewedBy        string                  `dynamodbav:"reviewed_by"`
	ReviewDate        string                  `dynamodbav:"review_date"`
	ReviewComments    string                  `dynamodbav:"review_comments"`
	RejectionReason   string                  `dynamodbav:"rejection_reason"`
	RejectionComments string                  `dynamodbav:"rejection_comments"`
	Offline           bool                    `dynamodbav:"offline"`
	SyncedAt          string                  `dynamodbav:"synced_at"`
	History           []entities.HistoryEntry `dynamodbav:"history"`
	CreatedAt         string                  `dynamodbav:"created_at"`
	UpdatedAt         string                  `dynamodbav:"updated_at"`
}

func NewRenditionDynamoRepository(ddb *dynamodb.Client, tables TableNames) *RenditionDynamoRepository {
	return &RenditionDynamoRepository{
		ddb:      ddb,
		t:        table{ddb: ddb, name: tableName(tables.Renditions, "RENDITIONS_TABLE", "renditions")},
		guards:   table{ddb: ddb, name: tableName(tables.Identifiers, "IDENTIFIERS_TABLE", "identifiers")},
		requests: NewServiceRequestDynamoRepository(ddb, tables),
	}
}

// CreateLinked puts the rendition, claims its folio and appends it to the owning request in
// one transaction.
func (r *RenditionDynamoRepository) CreateLinked(ctx context.Context, rd entities.Rendition) (entities.Rendition, error) {
	put, err := r.t.putItem(toRenditionItem(rd))
	if err != nil {
		return entities.Rendition{}, err
	}
	guard, err := r.guards.claim(guardFolio, rd.Folio, rd.ID)
	if err != nil {
		return entities.Rendition{}, err
	}
	values, err := marshalValues(map[string]interface{}{
		":rendition": []string{rd.ID},
		":now":       formatTime(rd.CreatedAt),
	})
	if err != nil {
		return entities.Rendition{}, err
	}
	link := types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(r.requests.t.name),
		Key:                       idKey(rd.ServiceRequestID),
		UpdateExpression:          aws.String("SET #renditions = list_append(#renditions, :rendition), #updated = :now"),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  map[string]string{"#renditions": "renditions", "#updated": "updated_at", "#id": "id"},
		ExpressionAttributeValues: values,
	}}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{put, guard, link},
	})
	if err != nil {
		if failed, ok := cancelledAt(err); ok {
			if slices.Contains(failed, 2) {
				return entities.Rendition{}, interfaces.ErrReferenceMissing
			}
			return entities.Rendition{}, interfaces.ErrDuplicateKey
		}
		return entities.Rendition{}, err
	}
	return rd, nil
}

func (r *RenditionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Rendition, error) {
	var it renditionItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Rendition{}, err
	}
	return fromRenditionItem(it), nil
}

func (r *RenditionDynamoRepository) List(ctx context.Context, f interfaces.RenditionFilter) ([]entities.Rendition, int, error) {
	in, err := newFilter().
		eq("technician", f.Technician).
		eq("service_request_id", f.ServiceRequestID).
		eq("project_id", f.ProjectID).
		eq("status", string(f.Status)).
		between("created_at", f.From, f.To).
		scan()
	if err != nil {
		return nil, 0, err
	}
	raw, err := r.t.scanAll(ctx, in)
	if err != nil {
		return nil, 0, err
	}
	items, err := unmarshalAll[renditionItem](raw)
	if err != nil {
		return nil, 0, err
	}
	out := make([]entities.Rendition, 0, len(items))
	for _, it := range items {
		out = append(out, fromRenditionItem(it))
	}
	newestFirst(out, func(rd entities.Rendition) time.Time { return rd.CreatedAt }, func(rd entities.Rendition) string { return rd.ID })
	result, total := page(out, f.PageQuery)
	return result, total, nil
}

// Update writes the author-editable fields together with status, ledger and review data,
// provided the stored status still equals expected.
func (r *RenditionDynamoRepository) Update(ctx context.Context, rd entities.Rendition, expected entities.RenditionStatus) (entities.Rendition, error) {
	return r.update(ctx, rd.ID,
		"SET #desc = :desc, #work = :work, #location = :location, #status = :status, #history = :history, "+
			"#reviewer = :reviewer, #reviewed = :reviewed, #comments = :comments, #reason = :reason, "+
			"#rejection = :rejection, #updated = :now",
		expected,
		map[string]string{
			"#desc":      "description",
			"#work":      "work_details",
			"#location":  "location",
			"#history":   "history",
			"#reviewer":  "reviewed_by",
			"#reviewed":  "review_date",
			"#comments":  "review_comments",
			"#reason":    "rejection_reason",
			"#rejection": "rejection_comments",
			"#updated":   "updated_at",
		},
		map[string]interface{}{
			":desc":      rd.Description,
			":work":      rd.WorkDetails,
			":location":  rd.Location,
			":status":    string(rd.Status),
			":history":   nonNil(rd.History),
			":reviewer":  rd.ReviewedBy,
			":reviewed":  formatTimePtr(rd.ReviewDate),
			":comments":  rd.ReviewComments,
			":reason":    string(rd.RejectionReason),
			":rejection": rd.RejectionComments,
			":now":       formatTime(rd.UpdatedAt),
		})
}

func (r *RenditionDynamoRepository) AppendExpense(ctx context.Context, id string, e entities.Expense, expected entities.RenditionStatus, submitted *entities.HistoryEntry) (entities.Rendition, error) {
	return r.append(ctx, id, "expenses", []entities.Expense{e}, expected, submitted)
}

func (r *RenditionDynamoRepository) AppendAttachments(ctx context.Context, id string, atts []entities.Attachment, expected entities.RenditionStatus, submitted *entities.HistoryEntry) (entities.Rendition, error) {
	return r.append(ctx, id, "attachments", atts, expected, submitted)
}

// Delete removes the rendition, frees its folio and drops it from the owning request.
func (r *RenditionDynamoRepository) Delete(ctx context.Context, rd entities.Rendition) error {
	items := []types.TransactWriteItem{
		r.t.deleteItem(rd.ID),
		r.guards.release(guardFolio, rd.Folio),
	}
	sr, err := r.requests.GetByID(ctx, rd.ServiceRequestID)
	if err != nil {
		return err
	}
	if unlink, ok := r.requests.unlinkRendition(sr, rd.ID); ok {
		items = append(items, unlink)
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}

// LatestIdentifier reads the newest rendition from the kind/created_at index.
func (r *RenditionDynamoRepository) LatestIdentifier(ctx context.Context) (string, error) {
	return r.t.latestIdentifier(ctx, kindRendition, "folio")
}

func (r *RenditionDynamoRepository) append(
	ctx context.Context,
	id, attr string,
	list interface{},
	expected entities.RenditionStatus,
	submitted *entities.HistoryEntry,
) (entities.Rendition, error) {
	expr := "SET #list = list_append(#list, :items), #updated = :now"
	names := map[string]string{"#list": attr, "#updated": "updated_at"}
	values := map[string]interface{}{":items": list, ":now": formatTime(utcNow())}
	if submitted != nil {
		expr += ", #status = :status, #history = list_append(#history, :entry)"
		names["#history"] = "history"
		values[":status"] = submitted.Status
		values[":entry"] = []entities.HistoryEntry{*submitted}
		values[":now"] = formatTime(submitted.ChangedAt)
	}
	return r.update(ctx, id, expr, expected, names, values)
}

// update applies expr when the stored status equals expected.
func (r *RenditionDynamoRepository) update(
	ctx context.Context,
	id string,
	expr string,
	expected entities.RenditionStatus,
	names map[string]string,
	values map[string]interface{},
) (entities.Rendition, error) {
	names["#status"] = "status"
	values[":expected"] = string(expected)
	var it renditionItem
	found, err := r.t.update(ctx, id, expr, "#status = :expected", names, values, &it)
	if errors.Is(err, errConditionFailed) {
		return entities.Rendition{}, interfaces.ErrStaleStatus
	}
	if err != nil || !found {
		return entities.Rendition{}, err
	}
	return fromRenditionItem(it), nil
}

func toRenditionItem(rd entities.Rendition) renditionItem {
	work := rd.WorkDetails
	work.MaterialsUsed = nonNil(work.MaterialsUsed)
	return renditionItem{
		ID:                rd.ID,
		Kind:              kindRendition,
		Folio:             rd.Folio,
		ServiceRequestID:  rd.ServiceRequestID,
		ProjectID:         rd.ProjectID,
		Description:       rd.Description,
		Technician:        rd.Technician,
		Status:            string(rd.Status),
		Location:          rd.Location,
		WorkDetails:       work,
		Expenses:          nonNil(rd.Expenses),
		Attachments:       nonNil(rd.Attachments),
		ReviewedBy:        rd.ReviewedBy,
		ReviewDate:        formatTimePtr(rd.ReviewDate),
		ReviewComments:    rd.ReviewComments,
		RejectionReason:   string(rd.RejectionReason),
		RejectionComments: rd.RejectionComments,
		Offline:           rd.Offline,
		SyncedAt:          formatTimePtr(rd.SyncedAt),
		History:           nonNil(rd.History),
		CreatedAt:         formatTime(rd.CreatedAt),
		UpdatedAt:         formatTime(rd.UpdatedAt),
	}
}

func fromRenditionItem(it renditionItem) entities.Rendition {
	return entities.Rendition{
		ID:                it.ID,
		Folio:             it.Folio,
		ServiceRequestID:  it.ServiceRequestID,
		ProjectID:         it.ProjectID,
		Description:       it.Description,
		Technician:        it.Technician,
		Status:            entities.RenditionStatus(it.Status),
		Location:          it.Location,
		WorkDetails:       it.WorkDetails,
		Expenses:          it.Expenses,
		Attachments:       it.Attachments,
		ReviewedBy:        it.ReviewedBy,
		ReviewDate:        parseTimePtr(it.ReviewDate),
		ReviewComments:    it.ReviewComments,
		RejectionReason:   entities.RejectionReason(it.RejectionReason),
		RejectionComments: it.RejectionComments,
		Offline:           it.Offline,
		SyncedAt:          parseTimePtr(it.SyncedAt),
		History:           it.History,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
