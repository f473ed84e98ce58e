package mbti_test

import (
	"testing"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStrengthLabel(t *testing.T) {
	Convey("Given the strength classifier", t, func() {
		Convey("Boundary deviations fall in the inclusive lower bucket", func() {
			So(mbti.StrengthLabel(50), ShouldEqual, mbti.StrengthSlight)
			So(mbti.StrengthLabel(60), ShouldEqual, mbti.StrengthSlight)   // deviation 10
			So(mbti.StrengthLabel(61), ShouldEqual, mbti.StrengthModerate) // deviation 11
			So(mbti.StrengthLabel(75), ShouldEqual, mbti.StrengthModerate) // deviation 25
			So(mbti.StrengthLabel(76), ShouldEqual, mbti.StrengthClear)    // deviation 26
			So(mbti.StrengthLabel(90), ShouldEqual, mbti.StrengthClear)    // deviation 40
			So(mbti.StrengthLabel(91), ShouldEqual, mbti.StrengthStrong)   // deviation 41
		})

		Convey("Deviations below 50 mirror deviations above", func() {
			So(mbti.StrengthLabel(40), ShouldEqual, mbti.StrengthSlight)
			So(mbti.StrengthLabel(25), ShouldEqual, mbti.StrengthModerate)
			So(mbti.StrengthLabel(10), ShouldEqual, mbti.StrengthClear)
			So(mbti.StrengthLabel(0), ShouldEqual, mbti.StrengthStrong)
		})
	})
}

func TestStrongestDimension(t *testing.T) {
	Convey("Given a completed result", t, func() {
		answers := []mbti.Answer{
			{QuestionID: "ei-1", Dimension: mbti.DimensionEI, Value: 1, Polarity: mbti.PolarityPositive},
			{QuestionID: "ei-2", Dimension: mbti.DimensionEI, Value: -3, Polarity: mbti.PolarityPositive},
			{QuestionID: "tf-1", Dimension: mbti.DimensionTF, Value: 3, Polarity: mbti.PolarityPositive},
		}
		result, err := mbti.Calculate(answers)
		So(err, ShouldBeNil)

		Convey("The axis furthest from neutral wins", func() {
			// TF sits at 100% (deviation 50); EI at 25% (deviation 25).
			dim, trait := mbti.StrongestDimension(result)
			So(dim, ShouldEqual, mbti.DimensionTF)
			So(trait, ShouldEqual, mbti.TraitT)
		})

		Convey("Ties resolve to the earliest axis in canonical order", func() {
			neutral, err := mbti.Calculate(nil)
			So(err, ShouldBeNil)
			dim, trait := mbti.StrongestDimension(neutral)
			So(dim, ShouldEqual, mbti.DimensionEI)
			So(trait, ShouldEqual, mbti.TraitE)
		})
	})
}

func TestAnswerInsight(t *testing.T) {
	Convey("Given the per-answer classifier", t, func() {
		Convey("Magnitude maps to the qualitative adverb", func() {
			cases := map[int]string{
				3: mbti.AdverbStrongly, -3: mbti.AdverbStrongly,
				2: mbti.AdverbModerately, -2: mbti.AdverbModerately,
				1: mbti.AdverbSlightly, -1: mbti.AdverbSlightly, 0: mbti.AdverbSlightly,
			}
			for value, adverb := range cases {
				insight, err := mbti.AnswerInsight(mbti.Answer{
					QuestionID: "sn-1", Dimension: mbti.DimensionSN, Value: value, Polarity: mbti.PolarityPositive,
				})
				So(err, ShouldBeNil)
				So(insight.Adverb, ShouldEqual, adverb)
			}
		})

		Convey("The favored trait follows the polarity-sign rule", func() {
			insight, err := mbti.AnswerInsight(mbti.Answer{
				QuestionID: "jp-7", Dimension: mbti.DimensionJP, Value: 2, Polarity: mbti.PolarityNegative,
			})
			So(err, ShouldBeNil)
			So(insight.Favored, ShouldEqual, mbti.TraitP)
			So(insight.FavoredName, ShouldEqual, "Perceiving")
		})

		Convey("An unknown dimension fails loudly", func() {
			_, err := mbti.AnswerInsight(mbti.Answer{QuestionID: "xx", Dimension: "??", Value: 1, Polarity: mbti.PolarityPositive})
			So(err, ShouldNotBeNil)
		})
	})
}
