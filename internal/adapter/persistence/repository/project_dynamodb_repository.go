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

const kindProject = "project"

type ProjectDynamoRepository struct {
	ddb    *dynamodb.Client
	t      table
	guards table
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

type projectItem struct {
	ID                   string                   `dynamodbav:"id"`
	Kind                 string                   `dynamodbav:"kind"`
	Name                 string                   `dynamodbav:"name"`
	Location             string                   `dynamodbav:"location"`
	Description          string                   `dynamodbav:"description"`
	OrderNumber          string                   `dynamodbav:"order_number"`
	IdentificationNumber string                   `dynamodbav:"identification_number"`
	ReceptionType        string                   `dynamodbav:"reception_type"`
	CompanyResponsible   string                   `dynamodbav:"company_responsible"`
	ClientContactName    string                   `dynamodbav:"client_contact_name"`
	ClientCompanyName    string                   `dynamodbav:"client_company_name"`
	CostCenter           string                   `dynamodbav:"cost_center"`
	Technician           string                   `dynamodbav:"technician"`
	Clients              []string                 `dynamodbav:"clients"`
	Status               string                   `dynamodbav:"status"`
	StartDate            string                   `dynamodbav:"start_date"`
	EndDate              string                   `dynamodbav:"end_date"`
	Milestones           []entities.Milestone     `dynamodbav:"milestones"`
	Photos               []entities.Photo         `dynamodbav:"photos"`
	Documents            []entities.Attachment    `dynamodbav:"documents"`
	LocationPoints       []entities.LocationPoint `dynamodbav:"location_points"`
	Metrics              entities.ProjectMetrics  `dynamodbav:"metrics"`
	StatusHistory        []entities.HistoryEntry  `dynamodbav:"status_history"`
	CreatedAt            string                   `dynamodbav:"created_at"`
	UpdatedAt            string                   `dynamodbav:"updated_at"`
}

func NewProjectDynamoRepository(ddb *dynamodb.Client, tables TableNames) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:    ddb,
		t:      table{ddb: ddb, name: tableName(tables.Projects, "PROJECTS_TABLE", "projects")},
		guards: table{ddb: ddb, name: tableName(tables.Identifiers, "IDENTIFIERS_TABLE", "identifiers")},
	}
}

// Create stores the project and claims its order number, when it has one, in one transaction.
func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	put, err := r.t.putItem(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}
	items := []types.TransactWriteItem{put}
	if p.OrderNumber != "" {
		guard, err := r.guards.claim(guardOrderNumber, p.OrderNumber, p.ID)
		if err != nil {
			return entities.Project{}, err
		}
		items = append(items, guard)
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if _, ok := cancelledAt(err); ok {
			return entities.Project{}, interfaces.ErrDuplicateKey
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var it projectItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Project, error) {
	var g guardItem
	found, err := r.guards.get(ctx, guardKey(guardOrderNumber, orderNumber), &g)
	if err != nil || !found {
		return entities.Project{}, err
	}
	return r.GetByID(ctx, g.Owner)
}

func (r *ProjectDynamoRepository) List(ctx context.Context, f interfaces.ProjectFilter) ([]entities.Project, int, error) {
	in, err := newFilter().
		eq("technician", f.Technician).
		contains("clients", f.Client).
		eq("status", string(f.Status)).
		scan()
	if err != nil {
		return nil, 0, err
	}
	raw, err := r.t.scanAll(ctx, in)
	if err != nil {
		return nil, 0, err
	}
	items, err := unmarshalAll[projectItem](raw)
	if err != nil {
		return nil, 0, err
	}
	out := make([]entities.Project, 0, len(items))
	for _, it := range items {
		if f.Search != "" && !containsFold(it.Name+" "+it.Location+" "+it.OrderNumber, f.Search) {
			continue
		}
		out = append(out, fromProjectItem(it))
	}
	newestFirst(out, func(p entities.Project) time.Time { return p.CreatedAt }, func(p entities.Project) string { return p.ID })
	result, total := page(out, f.PageQuery)
	return result, total, nil
}

// Update writes the editable scalar fields. A changed order number moves its guard in the same
// transaction.
func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	current, err := r.GetByID(ctx, p.ID)
	if err != nil || current.ID == "" {
		return entities.Project{}, err
	}
	values := map[string]interface{}{
		":name":      p.Name,
		":location":  p.Location,
		":desc":      p.Description,
		":order":     p.OrderNumber,
		":ident":     p.IdentificationNumber,
		":reception": string(p.ReceptionType),
		":company":   p.CompanyResponsible,
		":contact":   p.ClientContactName,
		":client":    p.ClientCompanyName,
		":cost":      p.CostCenter,
		":start":     formatTimePtr(p.StartDate),
		":end":       formatTimePtr(p.EndDate),
		":now":       formatTime(p.UpdatedAt),
	}
	names := map[string]string{
		"#name":      "name",
		"#location":  "location",
		"#desc":      "description",
		"#order":     "order_number",
		"#ident":     "identification_number",
		"#reception": "reception_type",
		"#company":   "company_responsible",
		"#contact":   "client_contact_name",
		"#client":    "client_company_name",
		"#cost":      "cost_center",
		"#start":     "start_date",
		"#end":       "end_date",
		"#updated":   "updated_at",
	}
	expr := "SET #name = :name, #location = :location, #desc = :desc, #order = :order, #ident = :ident, " +
		"#reception = :reception, #company = :company, #contact = :contact, #client = :client, #cost = :cost, " +
		"#start = :start, #end = :end, #updated = :now"

	if current.OrderNumber == p.OrderNumber {
		return r.update(ctx, p.ID, expr, "", names, values)
	}

	av, err := marshalValues(values)
	if err != nil {
		return entities.Project{}, err
	}
	items := []types.TransactWriteItem{{Update: &types.Update{
		TableName:                 aws.String(r.t.name),
		Key:                       idKey(p.ID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: av,
	}}}
	if current.OrderNumber != "" {
		items = append(items, r.guards.release(guardOrderNumber, current.OrderNumber))
	}
	if p.OrderNumber != "" {
		guard, err := r.guards.claim(guardOrderNumber, p.OrderNumber, p.ID)
		if err != nil {
			return entities.Project{}, err
		}
		items = append(items, guard)
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if failed, ok := cancelledAt(err); ok {
			if len(failed) > 0 && failed[0] == 0 {
				return entities.Project{}, nil
			}
			return entities.Project{}, interfaces.ErrDuplicateKey
		}
		return entities.Project{}, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	current, err := r.GetByID(ctx, id)
	if err != nil || current.ID == "" {
		return err
	}
	items := []types.TransactWriteItem{r.t.deleteItem(id)}
	if current.OrderNumber != "" {
		items = append(items, r.guards.release(guardOrderNumber, current.OrderNumber))
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}

func (r *ProjectDynamoRepository) UpdateStatus(ctx context.Context, id string, expected entities.ProjectStatus, entry entities.HistoryEntry) (entities.Project, error) {
	p, err := r.update(ctx, id,
		"SET #status = :to, #history = list_append(#history, :entry), #updated = :now",
		"#status = :expected",
		map[string]string{"#status": "status", "#history": "status_history", "#updated": "updated_at"},
		map[string]interface{}{
			":to":       entry.Status,
			":expected": string(expected),
			":entry":    []entities.HistoryEntry{entry},
			":now":      formatTime(entry.ChangedAt),
		})
	if errors.Is(err, errConditionFailed) {
		return entities.Project{}, interfaces.ErrStaleStatus
	}
	return p, err
}

func (r *ProjectDynamoRepository) SetTechnician(ctx context.Context, id string, technicianID string) (entities.Project, error) {
	return r.set(ctx, id, "technician", technicianID)
}

func (r *ProjectDynamoRepository) AddClient(ctx context.Context, id string, clientID string) (entities.Project, error) {
	p, err := r.update(ctx, id,
		"SET #clients = list_append(#clients, :client), #updated = :now",
		"NOT contains(#clients, :one)",
		map[string]string{"#clients": "clients", "#updated": "updated_at"},
		map[string]interface{}{
			":client": []string{clientID},
			":one":    clientID,
			":now":    formatTime(utcNow()),
		})
	if errors.Is(err, errConditionFailed) {
		return entities.Project{}, interfaces.ErrDuplicateKey
	}
	return p, err
}

func (r *ProjectDynamoRepository) AppendMilestone(ctx context.Context, id string, m entities.Milestone) (entities.Project, error) {
	return r.append(ctx, id, "milestones", []entities.Milestone{m})
}

func (r *ProjectDynamoRepository) SetMilestones(ctx context.Context, id string, milestones []entities.Milestone) (entities.Project, error) {
	return r.set(ctx, id, "milestones", nonNil(milestones))
}

func (r *ProjectDynamoRepository) AppendPhotos(ctx context.Context, id string, photos []entities.Photo) (entities.Project, error) {
	return r.append(ctx, id, "photos", photos)
}

func (r *ProjectDynamoRepository) SetPhotos(ctx context.Context, id string, photos []entities.Photo) (entities.Project, error) {
	return r.set(ctx, id, "photos", nonNil(photos))
}

func (r *ProjectDynamoRepository) AppendDocuments(ctx context.Context, id string, docs []entities.Attachment) (entities.Project, error) {
	return r.append(ctx, id, "documents", docs)
}

func (r *ProjectDynamoRepository) AppendLocationPoint(ctx context.Context, id string, lp entities.LocationPoint) (entities.Project, error) {
	return r.append(ctx, id, "location_points", []entities.LocationPoint{lp})
}

func (r *ProjectDynamoRepository) SetLocationPoints(ctx context.Context, id string, points []entities.LocationPoint) (entities.Project, error) {
	return r.set(ctx, id, "location_points", nonNil(points))
}

func (r *ProjectDynamoRepository) UpdateMetrics(ctx context.Context, id string, m entities.ProjectMetrics) error {
	_, err := r.set(ctx, id, "metrics", m)
	return err
}

func (r *ProjectDynamoRepository) append(ctx context.Context, id, attr string, list interface{}) (entities.Project, error) {
	return r.update(ctx, id,
		"SET #list = list_append(#list, :items), #updated = :now",
		"",
		map[string]string{"#list": attr, "#updated": "updated_at"},
		map[string]interface{}{":items": list, ":now": formatTime(utcNow())})
}

func (r *ProjectDynamoRepository) set(ctx context.Context, id, attr string, value interface{}) (entities.Project, error) {
	return r.update(ctx, id,
		"SET #attr = :value, #updated = :now",
		"",
		map[string]string{"#attr": attr, "#updated": "updated_at"},
		map[string]interface{}{":value": value, ":now": formatTime(utcNow())})
}

func (r *ProjectDynamoRepository) update(
	ctx context.Context,
	id string,
	expr string,
	cond string,
	names map[string]string,
	values map[string]interface{},
) (entities.Project, error) {
	var it projectItem
	found, err := r.t.update(ctx, id, expr, cond, names, values, &it)
	if err != nil || !found {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:                   p.ID,
		Kind:                 kindProject,
		Name:                 p.Name,
		Location:             p.Location,
		Description:          p.Description,
		OrderNumber:          p.OrderNumber,
		IdentificationNumber: p.IdentificationNumber,
		ReceptionType:        string(p.ReceptionType),
		CompanyResponsible:   p.CompanyResponsible,
		ClientContactName:    p.ClientContactName,
		ClientCompanyName:    p.ClientCompanyName,
		CostCenter:           p.CostCenter,
		Technician:           p.Technician,
		Clients:              nonNil(p.Clients),
		Status:               string(p.Status),
		StartDate:            formatTimePtr(p.StartDate),
		EndDate:              formatTimePtr(p.EndDate),
		Milestones:           nonNil(p.Milestones),
		Photos:               nonNil(p.Photos),
		Documents:            nonNil(p.Documents),
		LocationPoints:       nonNil(p.LocationPoints),
		Metrics:              p.Metrics,
		StatusHistory:        nonNil(p.StatusHistory),
		CreatedAt:            formatTime(p.CreatedAt),
		UpdatedAt:            formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:                   it.ID,
		Name:                 it.Name,
		Location:             it.Location,
		Description:          it.Description,
		OrderNumber:          it.OrderNumber,
		IdentificationNumber: it.IdentificationNumber,
		ReceptionType:        entities.ReceptionType(it.ReceptionType),
		CompanyResponsible:   it.CompanyResponsible,
		ClientContactName:    it.ClientContactName,
		ClientCompanyName:    it.ClientCompanyName,
		CostCenter:           it.CostCenter,
		Technician:           it.Technician,
		Clients:              it.Clients,
		Status:               entities.ProjectStatus(it.Status),
		StartDate:            parseTimePtr(it.StartDate),
		EndDate:              parseTimePtr(it.EndDate),
		Milestones:           it.Milestones,
		Photos:               it.Photos,
		Documents:            it.Documents,
		LocationPoints:       it.LocationPoints,
		Metrics:              it.Metrics,
		StatusHistory:        it.StatusHistory,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
