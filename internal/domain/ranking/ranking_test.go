package ranking_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/ranking"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/scoring"
)

func uniform(v, judge string) model.ScoreEntry {
	n := map[string]int{"5": 5, "10": 10, "15": 15}[v]
	return model.ScoreEntry{
		ProblemRelevance: n, TechnicalFeasibility: n, StatementAlignment: n,
		Creativity: n, Presentation: n, PlatformUse: n,
		UpdatedBy: judge,
	}
}

func TestRank(t *testing.T) {
	Convey("Given the documented judging scenario", t, func() {
		book := model.ScoreBook{}

		Convey("After judge j1 submits all-fives for T1", func() {
			book["T1"] = scoring.Merge(book["T1"], uniform("5", "j1"))
			standings := ranking.Rank(book)

			So(standings, ShouldHaveLength, 1)
			So(standings[0].TeamID, ShouldEqual, "T1")
			So(standings[0].Total, ShouldEqual, 30)
			So(standings[0].JudgeCount, ShouldEqual, 1)

			Convey("And judge j2 submits all-tens for T1", func() {
				book["T1"] = scoring.Merge(book["T1"], uniform("10", "j2"))
				standings := ranking.Rank(book)

				So(standings[0].Total, ShouldEqual, 90)
				So(standings[0].JudgeCount, ShouldEqual, 2)

				Convey("And j1 resubmits all-fifteens, replacing the first entry", func() {
					book["T1"] = scoring.Merge(book["T1"], uniform("15", "j1"))
					standings := ranking.Rank(book)

					So(standings[0].Total, ShouldEqual, 150)
					So(standings[0].JudgeCount, ShouldEqual, 2)
				})
			})
		})
	})

	Convey("Given multiple teams", t, func() {
		book := model.ScoreBook{}
		book["alpha"] = scoring.Merge(book["alpha"], uniform("5", "j1"))
		book["beta"] = scoring.Merge(book["beta"], uniform("15", "j1"))
		book["gamma"] = scoring.Merge(book["gamma"], uniform("10", "j1"))

		Convey("Standings come back total descending", func() {
			standings := ranking.Rank(book)

			So(standings, ShouldHaveLength, 3)
			So(standings[0].TeamID, ShouldEqual, "beta")
			So(standings[1].TeamID, ShouldEqual, "gamma")
			So(standings[2].TeamID, ShouldEqual, "alpha")
		})

		Convey("Ties keep a deterministic order regardless of map iteration", func() {
			book["delta"] = scoring.Merge(book["delta"], uniform("10", "j2"))

			// Rank repeatedly; Go randomizes map order between runs.
			first := ranking.Rank(book)
			for i := 0; i < 20; i++ {
				So(ranking.Rank(book), ShouldResemble, first)
			}
		})
	})

	Convey("Given a record with no identifier", t, func() {
		book := model.ScoreBook{}
		book[""] = scoring.Merge(book[""], uniform("5", "j1"))

		Convey("It lands under the Unknown Team sentinel", func() {
			standings := ranking.Rank(book)
			So(standings[0].TeamID, ShouldEqual, ranking.UnknownTeam)
		})
	})

	Convey("Given an empty book", t, func() {
		Convey("The standings are empty, not nil-panicking", func() {
			So(ranking.Rank(model.ScoreBook{}), ShouldHaveLength, 0)
		})
	})
}
