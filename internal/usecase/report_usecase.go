package usecase

//go:generate mockgen -source=report_usecase.go -destination=../adapter/http/handlers/mocks/report_usecase_mock.go -package=mocks

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

const (
	unknownProject    = "Proyecto Desconocido"
	unknownTechnician = "Técnico Desconocido"
)

type DateRange struct {
	From time.Time `json:"start_date"`
	To   time.Time `json:"end_date"`
}

type CountBucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type NamedCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CategoryTotal struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
	Count       int     `json:"count"`
}

type RenditionsReport struct {
	ByStatus           []CountBucket   `json:"renditions_by_status"`
	ByTechnician       []NamedCount    `json:"renditions_by_technician"`
	ExpensesByCategory []CategoryTotal `json:"expenses_by_category"`
	Range              DateRange       `json:"date_range"`
}

type ServiceRequestsReport struct {
	ByStatus   []CountBucket `json:"requests_by_status"`
	ByPriority []CountBucket `json:"requests_by_priority"`
	ByType     []CountBucket `json:"requests_by_type"`
	ByMonth    []CountBucket `json:"requests_by_month"`
	Range      DateRange     `json:"date_range"`
}

type ProjectsReport struct {
	ByStatus          []CountBucket `json:"projects_by_status"`
	RequestsByProject []NamedCount  `json:"service_requests_by_project"`
	Range             DateRange     `json:"date_range"`
}

type TechnicianPerformance struct {
	TechnicianID       string  `json:"technician_id"`
	TechnicianName     string  `json:"technician_name"`
	AssignedRequests   int     `json:"assigned_requests"`
	CompletedRequests  int     `json:"completed_requests"`
	CompletionRate     float64 `json:"completion_rate"`
	RenditionsCreated  int     `json:"renditions_submitted"`
	RenditionsApproved int     `json:"renditions_approved"`
	ApprovalRate       float64 `json:"approval_rate"`
	AvgResponseDays    float64 `json:"avg_response_time"`
}

// IReportUseCase builds admin reports over a creation date range. A zero range defaults to
// the last month.
type IReportUseCase interface {
	Projects(ctx context.Context, actor access.Subject, r DateRange) (ProjectsReport, error)
	ServiceRequests(ctx context.Context, actor access.Subject, r DateRange) (ServiceRequestsReport, error)
	Renditions(ctx context.Context, actor access.Subject, r DateRange) (RenditionsReport, error)
	TechnicianPerformance(ctx context.Context, actor access.Subject, r DateRange) ([]TechnicianPerformance, error)
	ExportRenditions(ctx context.Context, actor access.Subject, r DateRange, w io.Writer) error
}

type ReportUseCase struct {
	projects   interfaces.IProjectRepository
	requests   interfaces.IServiceRequestRepository
	renditions interfaces.IRenditionRepository
	users      interfaces.IUserRepository
	now        func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	projects interfaces.IProjectRepository,
	requests interfaces.IServiceRequestRepository,
	renditions interfaces.IRenditionRepository,
	users interfaces.IUserRepository,
) *ReportUseCase {
	return &ReportUseCase{
		projects:   projects,
		requests:   requests,
		renditions: renditions,
		users:      users,
		now:        utcNow,
	}
}

// dataset is everything a report may read, loaded concurrently.
type dataset struct {
	projects   []entities.Project
	requests   []entities.ServiceRequest
	renditions []entities.Rendition
	users      map[string]entities.User
}

func (u *ReportUseCase) Projects(ctx context.Context, actor access.Subject, r DateRange) (ProjectsReport, error) {
	r, ds, err := u.prepare(ctx, actor, r)
	if err != nil {
		return ProjectsReport{}, err
	}
	report := ProjectsReport{Range: r}

	byStatus := map[string]int{}
	names := map[string]string{}
	for _, p := range ds.projects {
		names[p.ID] = p.Name
		if r.contains(p.CreatedAt) {
			byStatus[string(p.Status)]++
		}
	}
	report.ByStatus = sortedBuckets(byStatus)

	perProject := map[string]int{}
	for _, sr := range ds.requests {
		if r.contains(sr.CreatedAt) {
			perProject[sr.ProjectID]++
		}
	}
	report.RequestsByProject = namedCounts(perProject, names, unknownProject)
	return report, nil
}

func (u *ReportUseCase) ServiceRequests(ctx context.Context, actor access.Subject, r DateRange) (ServiceRequestsReport, error) {
	r, ds, err := u.prepare(ctx, actor, r)
	if err != nil {
		return ServiceRequestsReport{}, err
	}
	byStatus, byPriority, byType, byMonth := map[string]int{}, map[string]int{}, map[string]int{}, map[string]int{}
	trendFrom := u.now().AddDate(-1, 0, 0)
	for _, sr := range ds.requests {
		if !sr.CreatedAt.Before(trendFrom) {
			byMonth[sr.CreatedAt.Format("2006-01")]++
		}
		if !r.contains(sr.CreatedAt) {
			continue
		}
		byStatus[string(sr.Status)]++
		byPriority[string(sr.Priority)]++
		byType[string(sr.RequestType)]++
	}
	return ServiceRequestsReport{
		ByStatus:   sortedBuckets(byStatus),
		ByPriority: sortedBuckets(byPriority),
		ByType:     sortedBuckets(byType),
		ByMonth:    sortedBuckets(byMonth),
		Range:      r,
	}, nil
}

func (u *ReportUseCase) Renditions(ctx context.Context, actor access.Subject, r DateRange) (RenditionsReport, error) {
	r, ds, err := u.prepare(ctx, actor, r)
	if err != nil {
		return RenditionsReport{}, err
	}
	byStatus, byTech := map[string]int{}, map[string]int{}
	totals := map[string]*CategoryTotal{}
	for _, rd := range ds.renditions {
		if !r.contains(rd.CreatedAt) {
			continue
		}
		byStatus[string(rd.Status)]++
		byTech[rd.Technician]++
		for _, e := range rd.Expenses {
			t, ok := totals[e.Category]
			if !ok {
				t = &CategoryTotal{Category: e.Category}
				totals[e.Category] = t
			}
			t.TotalAmount += e.Amount
			t.Count++
		}
	}

	expenses := make([]CategoryTotal, 0, len(totals))
	for _, t := range totals {
		expenses = append(expenses, *t)
	}
	slices.SortFunc(expenses, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.TotalAmount, a.TotalAmount); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})

	return RenditionsReport{
		ByStatus:           sortedBuckets(byStatus),
		ByTechnician:       namedCounts(byTech, userNames(ds.users), unknownTechnician),
		ExpensesByCategory: expenses,
		Range:              r,
	}, nil
}

func (u *ReportUseCase) TechnicianPerformance(ctx context.Context, actor access.Subject, r DateRange) ([]TechnicianPerformance, error) {
	r, ds, err := u.prepare(ctx, actor, r)
	if err != nil {
		return nil, err
	}
	perf := map[string]*TechnicianPerformance{}
	responseDays := map[string][]float64{}
	for _, usr := range ds.users {
		if usr.Role == entities.RoleTechnician {
			perf[usr.ID] = &TechnicianPerformance{TechnicianID: usr.ID, TechnicianName: usr.FullName()}
		}
	}
	for _, sr := range ds.requests {
		p, ok := perf[sr.AssignedTo]
		if !ok || !r.contains(sr.CreatedAt) {
			continue
		}
		p.AssignedRequests++
		if sr.Status == entities.RequestStatusCompleted {
			p.CompletedRequests++
			if sr.CompletionDate != nil {
				responseDays[sr.AssignedTo] = append(responseDays[sr.AssignedTo], sr.CompletionDate.Sub(sr.CreatedAt).Hours()/24)
			}
		}
	}
	for _, rd := range ds.renditions {
		p, ok := perf[rd.Technician]
		if !ok || !r.contains(rd.CreatedAt) {
			continue
		}
		p.RenditionsCreated++
		if rd.Status == entities.RenditionStatusApproved {
			p.RenditionsApproved++
		}
	}

	out := make([]TechnicianPerformance, 0, len(perf))
	for id, p := range perf {
		p.CompletionRate = percentage(p.CompletedRequests, p.AssignedRequests)
		p.ApprovalRate = percentage(p.RenditionsApproved, p.RenditionsCreated)
		if days := responseDays[id]; len(days) > 0 {
			var sum float64
			for _, d := range days {
				sum += d
			}
			p.AvgResponseDays = roundTo(sum/float64(len(days)), 2)
		}
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b TechnicianPerformance) int { return cmp.Compare(a.TechnicianName, b.TechnicianName) })
	return out, nil
}

// ExportRenditions writes the renditions in range as an .xlsx workbook with a detail sheet
// and an expense summary sheet.
func (u *ReportUseCase) ExportRenditions(ctx context.Context, actor access.Subject, r DateRange, w io.Writer) error {
	r, ds, err := u.prepare(ctx, actor, r)
	if err != nil {
		return err
	}
	names := userNames(ds.users)
	requestNumbers := make(map[string]string, len(ds.requests))
	for _, sr := range ds.requests {
		requestNumbers[sr.ID] = sr.RequestNumber
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[report][usecase] close workbook err=%v", err)
		}
	}()

	const detail = "Rendiciones"
	index, err := f.NewSheet(detail)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	headers := []string{"Folio", "Solicitud", "Técnico", "Estado", "Descripción", "Gastos", "Monto total", "Creada"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(detail, cell, h)
		f.SetCellStyle(detail, cell, cell, headerStyle)
	}
	f.SetColWidth(detail, "A", "H", 20)

	row := 2
	categories := map[string]*CategoryTotal{}
	for _, rd := range ds.renditions {
		if !r.contains(rd.CreatedAt) {
			continue
		}
		tech, ok := names[rd.Technician]
		if !ok {
			tech = unknownTechnician
		}
		values := []interface{}{
			rd.Folio,
			requestNumbers[rd.ServiceRequestID],
			tech,
			string(rd.Status),
			rd.Description,
			len(rd.Expenses),
			rd.TotalAmount(),
			rd.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(detail, cell, v)
		}
		row++
		for _, e := range rd.Expenses {
			t, ok := categories[e.Category]
			if !ok {
				t = &CategoryTotal{Category: e.Category}
				categories[e.Category] = t
			}
			t.TotalAmount += e.Amount
			t.Count++
		}
	}

	const summary = "Gastos por categoría"
	if _, err := f.NewSheet(summary); err != nil {
		return err
	}
	for col, h := range []string{"Categoría", "Cantidad", "Monto total"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(summary, cell, h)
		f.SetCellStyle(summary, cell, cell, headerStyle)
	}
	keys := make([]string, 0, len(categories))
	for k := range categories {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for i, k := range keys {
		t := categories[k]
		f.SetCellValue(summary, fmt.Sprintf("A%d", i+2), t.Category)
		f.SetCellValue(summary, fmt.Sprintf("B%d", i+2), t.Count)
		f.SetCellValue(summary, fmt.Sprintf("C%d", i+2), t.TotalAmount)
	}

	f.DeleteSheet("Sheet1")
	log.Printf("[report][usecase] renditions export rows=%d from=%s to=%s", row-2, r.From.Format(time.RFC3339), r.To.Format(time.RFC3339))
	_, err = f.WriteTo(w)
	return err
}

func (u *ReportUseCase) prepare(ctx context.Context, actor access.Subject, r DateRange) (DateRange, dataset, error) {
	if err := access.RequireAdmin(actor, "only admins can read reports"); err != nil {
		return DateRange{}, dataset{}, err
	}
	if r.To.IsZero() {
		r.To = u.now()
	}
	if r.From.IsZero() {
		r.From = r.To.AddDate(0, -1, 0)
	}
	if r.From.After(r.To) {
		return DateRange{}, dataset{}, invalid("start date must not be after end date")
	}
	ds, err := u.load(ctx)
	return r, ds, err
}

func (u *ReportUseCase) load(ctx context.Context) (dataset, error) {
	var ds dataset
	var users []entities.User
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ds.projects, _, err = u.projects.List(gctx, interfaces.ProjectFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		ds.requests, _, err = u.requests.List(gctx, interfaces.ServiceRequestFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		ds.renditions, _, err = u.renditions.List(gctx, interfaces.RenditionFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		users, err = u.users.List(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return dataset{}, fmt.Errorf("load report data: %w", err)
	}
	ds.users = make(map[string]entities.User, len(users))
	for _, usr := range users {
		ds.users[usr.ID] = usr
	}
	return ds, nil
}

func (r DateRange) contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

func sortedBuckets(m map[string]int) []CountBucket {
	out := make([]CountBucket, 0, len(m))
	for k, v := range m {
		out = append(out, CountBucket{Key: k, Count: v})
	}
	slices.SortFunc(out, func(a, b CountBucket) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

func namedCounts(counts map[string]int, names map[string]string, unknown string) []NamedCount {
	out := make([]NamedCount, 0, len(counts))
	for id, n := range counts {
		name, ok := names[id]
		if !ok {
			name = unknown
		}
		out = append(out, NamedCount{ID: id, Name: name, Count: n})
	}
	slices.SortFunc(out, func(a, b NamedCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func userNames(users map[string]entities.User) map[string]string {
	names := make(map[string]string, len(users))
	for id, usr := range users {
		names[id] = usr.FullName()
	}
	return names
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundTo(float64(part)/float64(total)*100, 2)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
