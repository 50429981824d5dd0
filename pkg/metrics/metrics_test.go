package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "hackvento")
				So(manager.subsystem, ShouldEqual, "judging")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "test-namespace")
				So(manager.subsystem, ShouldEqual, "test-subsystem")
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording judging metrics", func() {
			Convey("Then it should record submitted scores", func() {
				So(func() {
					RecordScoreSubmitted("file")
					RecordScoreSubmitted("postgres")
				}, ShouldNotPanic)
			})

			Convey("And it should record rejections", func() {
				So(func() {
					RecordValidationFailure("scores")
					RecordAuthFailure("invalid_session")
					RecordAuthFailure("invalid_admin_key")
				}, ShouldNotPanic)
			})

			Convey("And it should record ranking reads and roster fallbacks", func() {
				So(func() {
					RecordRankingRequest()
					RecordRosterFallback()
				}, ShouldNotPanic)
			})

			Convey("And it should update the coverage gauges", func() {
				So(func() {
					UpdateTeamsScored(12)
					UpdateJudgesSeen(4)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording store metrics", func() {
			Convey("Then it should record latency and errors per backend", func() {
				So(func() {
					RecordStoreWriteLatency("file", 2.5)
					RecordStoreReadLatency("postgres", 14.0)
					RecordStorageError("file")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests, durations and errors", func() {
				So(func() {
					RecordHTTPRequest("/scores", "POST", "200")
					RecordHTTPRequestDuration("/scores", "POST", "200", 8.0)
					RecordErrorByEndpoint("/ranking", "GET", "auth")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		Convey("When gathering after some activity", func() {
			RecordScoreSubmitted("file")
			families, err := GetRegistry().Gather()

			Convey("Then the judging metrics are present", func() {
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["hackvento_judging_scores_submitted_total"], ShouldBeTrue)
			})
		})
	})
}
