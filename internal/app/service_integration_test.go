package service_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/innerlens/innerlens/internal/adapters/http/api"
	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc, ctx := startedService(t)
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(ctx, mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func request(t *testing.T, ts *httptest.Server, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var out bytes.Buffer
	if _, err := out.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp, out.Bytes()
}

func TestIntegration_AssessmentFlow(t *testing.T) {
	ts := newTestServer(t)

	Convey("Given a running service behind the HTTP API", t, func() {

		Convey("When a client walks through a complete assessment", func() {
			resp, body := request(t, ts, http.MethodPost, "/sessions", map[string]interface{}{
				"ageGroup":   string(model.AgeGroupYoungAdult),
				"occupation": string(model.OccupationStudent),
				"interests":  []string{"music"},
				"locale":     "en",
			})
			So(resp.StatusCode, ShouldEqual, http.StatusCreated)

			var sess model.Session
			So(json.Unmarshal(body, &sess), ShouldBeNil)
			So(sess.ID, ShouldNotBeEmpty)
			So(sess.Scenarios, ShouldHaveLength, len(mbti.AllQuestions()))

			Convey("Then every scenario carries resolved text", func() {
				for _, sc := range sess.Scenarios {
					So(sc.LeftScenario, ShouldNotBeEmpty)
					So(sc.RightScenario, ShouldNotBeEmpty)
				}
			})

			Convey("And answers can be recorded in batches", func() {
				answers := make([]mbti.Answer, 0, len(sess.Scenarios))
				for _, sc := range sess.Scenarios {
					answers = append(answers, mbti.Answer{
						QuestionID: sc.QuestionID,
						Dimension:  sc.Dimension,
						Polarity:   sc.Polarity,
						Value:      3,
					})
				}
				half := len(answers) / 2

				resp, _ := request(t, ts, http.MethodPut, "/sessions/"+sess.ID+"/answers", map[string]interface{}{
					"answers": answers[:half],
				})
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				resp, body := request(t, ts, http.MethodPut, "/sessions/"+sess.ID+"/answers", map[string]interface{}{
					"answers": answers[half:],
				})
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				var updated model.Session
				So(json.Unmarshal(body, &updated), ShouldBeNil)
				So(updated.Answers, ShouldHaveLength, len(answers))

				Convey("And completing the session matches a direct calculation", func() {
					want, err := mbti.Calculate(answers)
					So(err, ShouldBeNil)

					resp, body := request(t, ts, http.MethodPost, "/sessions/"+sess.ID+"/result", nil)
					So(resp.StatusCode, ShouldEqual, http.StatusOK)

					var completed model.Session
					So(json.Unmarshal(body, &completed), ShouldBeNil)
					So(completed.Result, ShouldNotBeNil)
					So(completed.Result.Type, ShouldEqual, want.Type)
					So(completed.Result.Scores, ShouldResemble, want.Scores)

					Convey("And the session can be fetched and finally deleted", func() {
						resp, _ := request(t, ts, http.MethodGet, "/sessions/"+sess.ID, nil)
						So(resp.StatusCode, ShouldEqual, http.StatusOK)

						resp, _ = request(t, ts, http.MethodDelete, "/sessions/"+sess.ID, nil)
						So(resp.StatusCode, ShouldEqual, http.StatusNoContent)

						resp, _ = request(t, ts, http.MethodGet, "/sessions/"+sess.ID, nil)
						So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
					})
				})
			})
		})
	})
}

func TestIntegration_StatelessEndpoints(t *testing.T) {
	ts := newTestServer(t)

	Convey("Given a running service behind the HTTP API", t, func() {

		Convey("When the question catalog is requested", func() {
			resp, body := request(t, ts, http.MethodGet, "/questions", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var questions []mbti.Question
			So(json.Unmarshal(body, &questions), ShouldBeNil)
			So(questions, ShouldHaveLength, len(mbti.AllQuestions()))
		})

		Convey("When scenarios are generated without a session", func() {
			resp, body := request(t, ts, http.MethodPost, "/scenarios", map[string]interface{}{
				"ageGroup":   string(model.AgeGroupYoungAdult),
				"occupation": string(model.OccupationStudent),
				"interests":  []string{"music"},
			})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var scenarios []model.Scenario
			So(json.Unmarshal(body, &scenarios), ShouldBeNil)
			So(scenarios, ShouldHaveLength, len(mbti.AllQuestions()))
		})

		Convey("When a result is calculated directly", func() {
			q := mbti.AllQuestions()[0]
			resp, body := request(t, ts, http.MethodPost, "/calculate", map[string]interface{}{
				"answers": []mbti.Answer{
					{QuestionID: q.ID, Dimension: q.Dimension, Polarity: q.Polarity, Value: 3},
				},
			})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var result struct {
				mbti.Result
				Personality mbti.TypeInfo `json:"personality"`
			}
			So(json.Unmarshal(body, &result), ShouldBeNil)
			So(result.Type, ShouldHaveLength, 4)
			So(result.Personality.Name, ShouldNotBeEmpty)
		})

		Convey("When the stats endpoint is queried", func() {
			resp, body := request(t, ts, http.MethodGet, "/stats", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var stats map[string]interface{}
			So(json.Unmarshal(body, &stats), ShouldBeNil)
			So(stats["questionCount"], ShouldEqual, float64(len(mbti.AllQuestions())))
		})
	})
}
