package mbti_test

import (
	"testing"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalog(t *testing.T) {
	Convey("Given the question catalog", t, func() {
		all := mbti.AllQuestions()

		Convey("It contains 60 questions, 15 per dimension", func() {
			So(len(all), ShouldEqual, 60)
			for _, dim := range mbti.Dimensions() {
				So(len(mbti.QuestionsByDimension(dim)), ShouldEqual, 15)
			}
		})

		Convey("Every question is well-formed with a unique id", func() {
			seen := make(map[string]bool, len(all))
			for _, q := range all {
				So(q.ID, ShouldNotBeBlank)
				So(q.Text, ShouldNotBeBlank)
				So(q.Dimension.Valid(), ShouldBeTrue)
				So(q.Polarity.Valid(), ShouldBeTrue)
				So(seen[q.ID], ShouldBeFalse)
				seen[q.ID] = true
			}
		})

		Convey("AllQuestions returns a defensive copy", func() {
			first := mbti.AllQuestions()
			first[0].Text = "mutated"
			So(mbti.AllQuestions()[0].Text, ShouldNotEqual, "mutated")
		})

		Convey("QuestionByID resolves known and unknown ids", func() {
			q, ok := mbti.QuestionByID("tf-5")
			So(ok, ShouldBeTrue)
			So(q.Dimension, ShouldEqual, mbti.DimensionTF)

			_, ok = mbti.QuestionByID("zz-99")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestTypeInfo(t *testing.T) {
	Convey("Given the personality metadata", t, func() {
		Convey("All 16 types are described", func() {
			So(len(mbti.AllTypes()), ShouldEqual, 16)
		})

		Convey("A known type resolves", func() {
			info, err := mbti.Info("INTJ")
			So(err, ShouldBeNil)
			So(info.Name, ShouldEqual, "Architect")
		})

		Convey("An unknown type is an error", func() {
			_, err := mbti.Info("ABCD")
			So(err, ShouldNotBeNil)
		})
	})
}
