package analytics

import (
	"context"
	"fmt"
	"interview-prep/database"
	"interview-prep/helpers"
	"interview-prep/models"
	"os"
	"sort"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go"
)

// Tracker collects usage events (report visits, searches) in the analytics
// store (InfluxDB). Tracking is best-effort and never fails a request.
type Tracker struct {
	influxClient influxdb2.Client
	VisitorAPI   database.InfluxAPI
	SearchAPI    database.InfluxAPI
	GetUserName  func(ID string) (string, error)
}

// Visit is a single page view of a report
type Visit struct {
	VisitTS  time.Time `json:"visitTS"`
	ObjectID string    `json:"-"`
	UserID   string    `json:"userID"`
	UserName string    `json:"userName"`
}

// SetConnections initializes the instance
func (t *Tracker) SetConnections(influxClient *influxdb2.Client) {
	t.influxClient = *influxClient
}

// SaveVisit stores a page view in the analytics cache
func (t *Tracker) SaveVisit(domain string, profileID string, userID string) {

	if os.Getenv("USE_ANALYTICS") != "YES" {
		return
	}

	// include the object type (domain) in the tag,
	// so it can be "wrapped" in aggregation queries
	p := influxdb2.NewPoint(
		"visit",
		map[string]string{"profileId": domain + "_" + profileID},
		map[string]interface{}{"userId": userID},
		time.Now())

	// fire & forget
	_ = t.VisitorAPI.WriteAPI.WritePoint(context.Background(), p)
}

// SaveSearch logs the filters of a public listing request
// (empty searches are not worth recording)
func (t *Tracker) SaveSearch(search *models.ExperienceSearch) {

	if os.Getenv("USE_ANALYTICS") != "YES" {
		return
	}

	if search.Company == "" && search.RoleApplied == "" && search.Difficulty == "" {
		return
	}

	fields := map[string]interface{}{
		"company":    search.Company,
		"role":       search.RoleApplied,
		"difficulty": search.Difficulty,
	}

	p := influxdb2.NewPoint(
		"search", // measurement
		map[string]string{"domain": "experience"}, // tag
		fields,
		time.Now())

	_ = t.SearchAPI.WriteAPI.WritePoint(context.Background(), p)
}

// GetVisits counts the number of visits of a report
// the value is "live" - read from the analytics cache which keeps
// a limited period (TTL) of data
func (t *Tracker) GetVisits(domain string, profileID string, startDT time.Time) (int64, error) {

	if os.Getenv("USE_ANALYTICS") != "YES" {
		return -1, nil
	}

	flux := `from(bucket: "%s")
		|> range(start: %s)
		|> filter(fn: (r) => r["_measurement"] == "visit" and r["profileId"] == "%s")
		|> count()
		|> yield(name: "count")`

	id := domain + "_" + profileID
	flux = fmt.Sprintf(
		flux,
		os.Getenv("ANALYTICS_VISITORS_BUCKET"),
		startDT.Format(time.RFC3339),
		id)

	result, err := t.VisitorAPI.QueryAPI.Query(context.Background(), flux)
	if err != nil {
		return 0, helpers.WrapError(err, helpers.FuncName())
	}

	// single record expected
	var res interface{}
	for result.Next() {
		res = result.Record().Value()
	}

	return countValue(res), nil
}

// countValue reads a flux count result; the numeric type depends on the
// aggregation, so never assert blindly
func countValue(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

// ListVisitors returns the last visitors of a report
// (only the latest visit per user)
func (t *Tracker) ListVisitors(profileID string, startDT time.Time) ([]Visit, error) {

	if os.Getenv("USE_ANALYTICS") != "YES" {
		return nil, nil
	}

	flux := `import "strings"
		from(bucket: "%s")
		|> range(start: %s)
		|> filter(fn: (r) => r["_measurement"] == "visit" and strings.containsStr(substr: "%s", v: r.profileId))
		|> group(columns: ["_value"], mode:"by")
		|> max(column: "_time")
		|> sort(columns: ["_time"], desc: true)
		|> limit(n:10, offset: 0)`

	flux = fmt.Sprintf(
		flux,
		os.Getenv("ANALYTICS_VISITORS_BUCKET"),
		startDT.Format(time.RFC3339),
		profileID)

	result, err := t.VisitorAPI.QueryAPI.Query(context.Background(), flux)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var visit Visit
	var visits []Visit
	for result.Next() {
		visit.VisitTS = result.Record().Time()
		visit.ObjectID = profileID
		if result.Record().Value() == nil {
			visit.UserID = ""
			visit.UserName = ""
		} else {
			visit.UserID = result.Record().Value().(string)
			visit.UserName, _ = t.GetUserName(visit.UserID)
		}

		visits = append(visits, visit)
	}

	// the flux query sorts correctly, the received slice does not
	sort.Slice(visits, func(i, j int) bool {
		return visits[j].VisitTS.Before(visits[i].VisitTS)
	})

	return visits, nil
}
