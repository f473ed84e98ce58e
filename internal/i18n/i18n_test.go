package i18n_test

import (
	"testing"

	"github.com/innerlens/innerlens/internal/i18n"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBundles(t *testing.T) {
	Convey("Given the embedded locale bundles", t, func() {
		Convey("English and Chinese are supported", func() {
			So(i18n.Supported("en"), ShouldBeTrue)
			So(i18n.Supported("zh"), ShouldBeTrue)
			So(i18n.Locales(), ShouldResemble, []string{"en", "zh"})
		})

		Convey("Every fallback template exists in every locale", func() {
			for _, locale := range i18n.Locales() {
				for _, dim := range []string{"EI", "SN", "TF", "JP"} {
					for _, polarity := range []string{"positive", "negative"} {
						for _, side := range []string{"left", "right"} {
							key := "scenarios.fallback." + dim + "." + polarity + "." + side
							So(i18n.T(locale, key, nil), ShouldNotEqual, key)
						}
					}
				}
			}
		})
	})
}

func TestT(t *testing.T) {
	Convey("Given the translation lookup", t, func() {
		Convey("Parameters are interpolated", func() {
			got := i18n.T("en", "scenarios.occupationDetailFormat", map[string]string{
				"base":   "a student",
				"detail": "computer science",
			})
			So(got, ShouldEqual, "a student focusing on computer science")
		})

		Convey("The context placeholder is substituted in fallback templates", func() {
			got := i18n.T("en", "scenarios.fallback.EI.positive.right", map[string]string{"context": "meeting"})
			So(got, ShouldContainSubstring, "meeting")
			So(got, ShouldNotContainSubstring, "{context}")
		})

		Convey("Missing keys return the path", func() {
			So(i18n.T("en", "no.such.key", nil), ShouldEqual, "no.such.key")
		})

		Convey("Unknown locales fall back to English", func() {
			en := i18n.T("en", "insight.traits.E", nil)
			So(i18n.T("fr", "insight.traits.E", nil), ShouldEqual, en)
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given locale normalization", t, func() {
		So(i18n.Normalize("zh-CN"), ShouldEqual, "zh")
		So(i18n.Normalize("EN"), ShouldEqual, "en")
		So(i18n.Normalize("fr"), ShouldEqual, "en")
		So(i18n.Normalize(""), ShouldEqual, "en")
	})
}
