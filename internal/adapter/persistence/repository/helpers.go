package repository

import (
	"errors"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"fieldops/internal/domain/identifier"
	"fieldops/internal/usecase/interfaces"
)

// TableNames overrides the DynamoDB table names. Empty fields fall back to the *_TABLE
// environment variables and then to the defaults.
type TableNames struct {
	Projects          string
	ServiceRequests   string
	Renditions        string
	Notifications     string
	Users             string
	ExpenseCategories string
	Counters          string
	Identifiers       string
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// tableName prefers the configured name, then the env override, then the default.
func tableName(configured, envKey, def string) string {
	if configured != "" {
		return configured
	}
	return getenvDefault(envKey, def)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// timeLayout is RFC3339 with fixed-width nanoseconds so stored timestamps sort as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

// nonNil keeps list attributes as empty L values instead of NULL, so list_append works.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if s, ok := item[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

// highestSequence picks the identifier with the largest trailing sequence number.
func highestSequence(ids []string) string {
	var best string
	var bestSeq int64 = -1
	for _, id := range ids {
		seq, ok := identifier.ParseSequence(id)
		if !ok || seq <= bestSeq {
			continue
		}
		best, bestSeq = id, seq
	}
	return best
}

func str(v string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: v}
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": str(id)}
}

// conditionFailed reports whether err is a failed condition and returns the item as it was
// when the condition was evaluated (empty when the item did not exist).
func conditionFailed(err error) (map[string]types.AttributeValue, bool) {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return cfe.Item, true
	}
	return nil, false
}

// cancelledAt returns the indexes of the transaction items whose condition failed.
func cancelledAt(err error) ([]int, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return nil, false
	}
	var failed []int
	for i, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			failed = append(failed, i)
		}
	}
	return failed, true
}

var errConditionFailed = errors.New("condition check failed")

// filter accumulates a FilterExpression from optional equality and containment checks.
type filter struct {
	parts  []string
	names  map[string]string
	values map[string]interface{}
}

func newFilter() *filter {
	return &filter{names: map[string]string{}, values: map[string]interface{}{}}
}

func (f *filter) eq(attr, value string) *filter {
	if value == "" {
		return f
	}
	n := len(f.parts)
	name, placeholder := "#f"+strconv.Itoa(n), ":f"+strconv.Itoa(n)
	f.parts = append(f.parts, name+" = "+placeholder)
	f.names[name] = attr
	f.values[placeholder] = value
	return f
}

func (f *filter) contains(attr, value string) *filter {
	if value == "" {
		return f
	}
	n := len(f.parts)
	name, placeholder := "#f"+strconv.Itoa(n), ":f"+strconv.Itoa(n)
	f.parts = append(f.parts, "contains("+name+", "+placeholder+")")
	f.names[name] = attr
	f.values[placeholder] = value
	return f
}

func (f *filter) between(attr string, from, to *time.Time) *filter {
	if from != nil {
		n := len(f.parts)
		name, placeholder := "#f"+strconv.Itoa(n), ":f"+strconv.Itoa(n)
		f.parts = append(f.parts, name+" >= "+placeholder)
		f.names[name] = attr
		f.values[placeholder] = formatTime(*from)
	}
	if to != nil {
		n := len(f.parts)
		name, placeholder := "#f"+strconv.Itoa(n), ":f"+strconv.Itoa(n)
		f.parts = append(f.parts, name+" <= "+placeholder)
		f.names[name] = attr
		f.values[placeholder] = formatTime(*to)
	}
	return f
}

func (f *filter) scan() (*dynamodb.ScanInput, error) {
	in := &dynamodb.ScanInput{}
	if len(f.parts) == 0 {
		return in, nil
	}
	values, err := marshalValues(f.values)
	if err != nil {
		return nil, err
	}
	in.FilterExpression = aws.String(strings.Join(f.parts, " AND "))
	in.ExpressionAttributeNames = f.names
	in.ExpressionAttributeValues = values
	return in, nil
}

func newestFirst[T any](items []T, created func(T) time.Time, id func(T) string) {
	slices.SortFunc(items, func(a, b T) int {
		if c := created(b).Compare(created(a)); c != 0 {
			return c
		}
		return strings.Compare(id(a), id(b))
	})
}

func page[T any](items []T, q interfaces.PageQuery) ([]T, int) {
	start, end := q.Window(len(items))
	return items[start:end], len(items)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
