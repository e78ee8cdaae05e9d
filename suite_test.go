package stepreport_test

import (
	"fmt"
	"io"
	"strconv"
	"testing"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/stepreport"
)

// stepRecorder collects what the fixture steps would hand to a reporting
// client: composed step names and rendered data tables.
type stepRecorder struct {
	names  []string
	tables []string
}

func (r *stepRecorder) name(keyword, text string) {
	r.names = append(r.names, stepreport.BuildName(keyword, " ", text))
}

func initFixtureScenario(rec *stepRecorder) func(*godog.ScenarioContext) {
	return func(sc *godog.ScenarioContext) {
		sc.Step(`^it is a test with parameters$`, func() {
			rec.name("Given", "it is a test with parameters")
		})
		sc.Step(`^I have parameter (\w+)$`, func(param string) {
			rec.name("When", "I have parameter "+param)
		})
		sc.Step(`^I have a step with an integer parameter (\d+)$`, func(param int) error {
			if param <= 0 {
				return fmt.Errorf("unexpected parameter %d", param)
			}
			rec.name("And", "I have a step with an integer parameter "+strconv.Itoa(param))
			return nil
		})
		sc.Step(`^I emit number (\d+) on level info$`, func(param int) {
			rec.name("Then", "I emit number "+strconv.Itoa(param)+" on level info")
		})
		sc.Step(`^I record the following items:$`, func(items *godog.Table) {
			rec.tables = append(rec.tables, stepreport.FormatTable(items))
		})
	}
}

func TestFixtureSuite(t *testing.T) {
	rec := &stepRecorder{}
	suite := godog.TestSuite{
		Name:                "stepreport",
		ScenarioInitializer: initFixtureScenario(rec),
		Options: &godog.Options{
			Format:   "progress",
			Paths:    []string{"features"},
			Output:   io.Discard,
			Strict:   true,
			TestingT: t,
		},
	}
	require.Equal(t, 0, suite.Run(), "fixture suite failed")

	assert.Contains(t, rec.names, "Given it is a test with parameters")
	assert.Contains(t, rec.names, "When I have parameter one")
	assert.Contains(t, rec.names, "And I have a step with an integer parameter 42")
	assert.Contains(t, rec.names, "Then I emit number 7 on level info")

	require.Len(t, rec.tables, 1)
	want := stepreport.FormatDataTable([][]string{
		{"name", "price"},
		{"tea", "3"},
		{"cake", "12.50"},
	})
	assert.Equal(t, want, rec.tables[0])
}
