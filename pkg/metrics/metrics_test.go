package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "futebol")
			})
		})

		Convey("When creating with a custom namespace", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("jogo"),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then metric names carry the namespace and subsystem", func() {
				manager.providerRequests.WithLabelValues("events", "ok").Inc()
				count, err := testutil.GatherAndCount(registry, "jogo_api_provider_requests_total")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 1)
			})
		})

		Convey("When the namespace option is empty", func() {
			manager := NewManager(WithNamespace(""), WithPrometheusRegistry(prometheus.NewRegistry()))

			Convey("Then the default namespace is kept", func() {
				So(manager.namespace, ShouldEqual, "futebol")
			})
		})
	})
}

func TestInit(t *testing.T) {
	Convey("Given the global metrics state", t, func() {
		savedManager, savedRegistry := globalManager, customRegistry
		defer func() { globalManager, customRegistry = savedManager, savedRegistry }()

		Convey("When initialising with a namespace", func() {
			Init(WithNamespace("jogo"))
			RecordHTTPRequest("competicoes", "GET", "200")

			Convey("Then the new registry exports the renamed series", func() {
				So(GetRegistry(), ShouldNotEqual, savedRegistry)
				count, err := testutil.GatherAndCount(GetRegistry(), "jogo_api_http_requests_total")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 1)
			})
		})

		Convey("When initialising twice", func() {
			So(func() {
				Init()
				Init()
			}, ShouldNotPanic)
		})

		Convey("When initialising with collection disabled", func() {
			Init(WithMetricsEnabled(false))
			RecordHTTPRequest("competicoes", "GET", "200")
			UpdateSystemGoroutineCount(12)

			Convey("Then nothing is observed", func() {
				count, err := testutil.GatherAndCount(GetRegistry(), "futebol_api_http_requests_total")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 0)
				So(testutil.ToFloat64(globalManager.systemGoroutineCount), ShouldEqual, 0)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording provider requests", func() {
			before := testutil.ToFloat64(globalManager.providerRequests.WithLabelValues("events", "not_found"))
			RecordProviderRequest("events", "not_found", 12)

			Convey("Then the counter increases", func() {
				after := testutil.ToFloat64(globalManager.providerRequests.WithLabelValues("events", "not_found"))
				So(after-before, ShouldEqual, 1)
			})
		})

		Convey("When recording narration attempts", func() {
			before := testutil.ToFloat64(globalManager.narrationRequests.WithLabelValues("gemini", "error"))
			RecordNarration("gemini", "error", 250)
			RecordNarration("none", "unconfigured", 0)

			Convey("Then the outcome counter increases", func() {
				after := testutil.ToFloat64(globalManager.narrationRequests.WithLabelValues("gemini", "error"))
				So(after-before, ShouldEqual, 1)
			})
		})

		Convey("When recording HTTP and error metrics", func() {
			So(func() {
				RecordHTTPRequest("resumo_partida", "GET", "200")
				RecordHTTPRequestDuration("resumo_partida", "GET", "200", 15.0)
				RecordErrorByEndpoint("linha_tempo", "GET", "client_error")
				RecordErrorByType("client_error", "medium")
				RecordEventsFetched(3500)
				UpdateSystemMemoryUsage(1024 * 1024)
				UpdateSystemGoroutineCount(12)
			}, ShouldNotPanic)
		})

		Convey("When gathering the custom registry", func() {
			RecordHTTPRequest("competicoes", "GET", "200")
			count, err := testutil.GatherAndCount(GetRegistry(), "futebol_api_http_requests_total")

			Convey("Then the series are exported", func() {
				So(err, ShouldBeNil)
				So(count, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When reading the refresh interval", func() {
			So(RefreshInterval(), ShouldEqual, defaultRefreshInterval)
		})
	})
}

func TestMetricsDisabled(t *testing.T) {
	Convey("Given a disabled manager swapped in as global", t, func() {
		registry := prometheus.NewRegistry()
		saved := globalManager
		globalManager = NewManager(WithPrometheusRegistry(registry), WithMetricsEnabled(false))
		defer func() { globalManager = saved }()

		Convey("When recording", func() {
			RecordHTTPRequest("competicoes", "GET", "200")

			Convey("Then nothing is observed", func() {
				var sb strings.Builder
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				for _, f := range families {
					sb.WriteString(f.GetName())
				}
				So(sb.String(), ShouldNotContainSubstring, "http_requests_total")
			})
		})
	})
}
