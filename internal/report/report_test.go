package report

import (
	"strings"
	"testing"

	"github.com/charmkit/logstats/internal/model"
	"github.com/charmkit/logstats/internal/stats"
)

func populatedStore() *stats.Store {
	s := stats.NewStore()
	s.AddRecord("mysql", model.SeverityInfo, "starting up")
	s.AddRecord("mysql", model.SeverityWarning, "disk low")
	s.AddRecord("mysql", model.SeverityWarning, "disk low")
	s.AddRecord("nginx", model.SeverityError, "crash")
	s.IncDropped()
	return s
}

func TestRender_EndToEndExample(t *testing.T) {
	t.Parallel()
	got := Render(populatedStore(), Options{})

	want := strings.Join([]string{
		"Charms that produced warning messages:  mysql",
		"Severity counts: ",
		"  INFO: 1",
		"  WARNING: 2",
		"  ERROR: 1",
		"Duplicate messages:",
		"  WARNING: 2 -- 'disk low'",
		"Message severity ratios per charm:",
		"  mysql",
		"    Total messages: 3",
		"    INFO: 33.33%",
		"    WARNING: 66.67%",
		"  nginx",
		"    Total messages: 1",
		"    ERROR: 100.00%",
		"Total analyzed log messages: 4",
		"Dropped log messages: 1",
		"",
	}, "\n")

	if got != want {
		t.Errorf("Render() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_EmptyStore(t *testing.T) {
	t.Parallel()
	got := Render(stats.NewStore(), Options{})

	want := strings.Join([]string{
		"Charms that produced warning messages:  ",
		"Severity counts: ",
		"Duplicate messages:",
		"Message severity ratios per charm:",
		"Total analyzed log messages: 0",
		"Dropped log messages: 0",
		"",
	}, "\n")

	if got != want {
		t.Errorf("Render() mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRender_SingleOccurrenceNotDuplicate(t *testing.T) {
	t.Parallel()
	s := stats.NewStore()
	s.AddRecord("mysql", model.SeverityError, "once")
	s.AddRecord("mysql", model.SeverityWarning, "twice")
	s.AddRecord("mysql", model.SeverityWarning, "twice")

	got := Render(s, Options{})
	if strings.Contains(got, "'once'") {
		t.Error("report lists a message seen once in the duplicates section")
	}
	if !strings.Contains(got, "  WARNING: 2 -- 'twice'\n") {
		t.Errorf("report missing duplicate entry, got:\n%s", got)
	}
}

func TestRender_DuplicateSpansCharms(t *testing.T) {
	t.Parallel()
	s := stats.NewStore()
	s.AddRecord("mysql", model.SeverityError, "connection lost")
	s.AddRecord("nginx", model.SeverityError, "connection lost")

	got := Render(s, Options{})
	if !strings.Contains(got, "  ERROR: 2 -- 'connection lost'\n") {
		t.Errorf("identical (message, severity) across charms should share a bucket, got:\n%s", got)
	}
}

func TestRender_PercentagesSumToHundred(t *testing.T) {
	t.Parallel()
	s := stats.NewStore()
	// 1/3 splits produce repeating decimals; the rendered shares should
	// still sum to 100 within rounding.
	s.AddRecord("mysql", model.SeverityInfo, "a")
	s.AddRecord("mysql", model.SeverityDebug, "b")
	s.AddRecord("mysql", model.SeverityWarning, "c")

	got := Render(s, Options{})
	for _, line := range []string{"    INFO: 33.33%", "    DEBUG: 33.33%", "    WARNING: 33.33%"} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("missing %q in:\n%s", line, got)
		}
	}
}

func TestRender_WarningCharmsInInsertionOrder(t *testing.T) {
	t.Parallel()
	s := stats.NewStore()
	s.AddRecord("zebra", model.SeverityWarning, "w1")
	s.AddRecord("apple", model.SeverityInfo, "i1")
	s.AddRecord("mango", model.SeverityWarning, "w2")

	got := Render(s, Options{})
	if !strings.Contains(got, "Charms that produced warning messages:  zebra, mango\n") {
		t.Errorf("warning charms not in insertion order:\n%s", got)
	}
}

func TestRender_SeverityTotalsFirstSeenOrder(t *testing.T) {
	t.Parallel()
	s := stats.NewStore()
	s.AddRecord("a", model.SeverityError, "m1")
	s.AddRecord("b", model.SeverityInfo, "m2")
	s.AddRecord("a", model.SeverityInfo, "m3")

	got := Render(s, Options{})
	errIdx := strings.Index(got, "  ERROR: 1")
	infoIdx := strings.Index(got, "  INFO: 2")
	if errIdx < 0 || infoIdx < 0 {
		t.Fatalf("missing severity totals:\n%s", got)
	}
	if errIdx > infoIdx {
		t.Errorf("ERROR was seen first and should be listed first:\n%s", got)
	}
}

func TestRender_ColorKeepsDataLinesPlain(t *testing.T) {
	t.Parallel()
	got := Render(populatedStore(), Options{Color: true})

	// Regardless of how headers render, data lines must stay byte-exact.
	for _, line := range []string{
		"  WARNING: 2 -- 'disk low'\n",
		"    Total messages: 3\n",
		"Total analyzed log messages: 4\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing data line %q in colored output", line)
		}
	}
}
