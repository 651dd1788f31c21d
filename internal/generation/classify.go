package generation

import (
	"fmt"
	"net/http"
	"strings"
)

// Kind identifies a failure signature embedded in upstream content. The
// upstream surfaces some failures inline as sentinel strings inside a 200
// response; each kind maps to a fixed status code and user-facing message.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindTimeout       Kind = "timeout"
	KindQuestionStage Kind = "question_generation"
	KindSolutionStage Kind = "solution_generation"
	KindAnswerStage   Kind = "answer_generation"
	KindAnswerMissing Kind = "answer_not_available"
	KindUnexpected    Kind = "unexpected"
)

type sentinel struct {
	marker string
	kind   Kind
}

// contentSentinels are the markers scanned in title, passage, question, and
// solution fields. The answer-not-available marker is deliberately absent:
// it only counts when it appears in an answer field.
var contentSentinels = []sentinel{
	{"[VALIDATION ERROR]", KindValidation},
	{"[TIMEOUT ERROR]", KindTimeout},
	{"[QUESTION GENERATION ERROR]", KindQuestionStage},
	{"[SOLUTION GENERATION ERROR]", KindSolutionStage},
	{"[ANSWER GENERATION ERROR]", KindAnswerStage},
	{"[UNEXPECTED ERROR]", KindUnexpected},
}

// answerSentinels extend the content markers with the answer-only kind.
var answerSentinels = append(contentSentinels[:len(contentSentinels):len(contentSentinels)],
	sentinel{"[ANSWER NOT AVAILABLE]", KindAnswerMissing},
)

var statusByKind = map[Kind]int{
	KindValidation:    http.StatusUnprocessableEntity,
	KindTimeout:       http.StatusGatewayTimeout,
	KindQuestionStage: http.StatusInternalServerError,
	KindSolutionStage: http.StatusInternalServerError,
	KindAnswerStage:   http.StatusInternalServerError,
	KindAnswerMissing: http.StatusInternalServerError,
	KindUnexpected:    http.StatusInternalServerError,
}

// messageByKind holds the fixed localized messages returned to learners.
// Raw sentinel text never reaches a client; it goes to telemetry only.
var messageByKind = map[Kind]string{
	KindValidation:    "생성된 콘텐츠 검증에 실패했습니다. 다른 키워드로 다시 시도해 주세요.",
	KindTimeout:       "텍스트 생성 시간이 초과되었습니다. 잠시 후 다시 시도해 주세요.",
	KindQuestionStage: "문항 생성 중 오류가 발생했습니다. 다시 시도해 주세요.",
	KindSolutionStage: "해설 생성 중 오류가 발생했습니다. 다시 시도해 주세요.",
	KindAnswerStage:   "정답 생성 중 오류가 발생했습니다. 다시 시도해 주세요.",
	KindAnswerMissing: "정답 생성에 실패했습니다. 다시 시도해 주세요.",
	KindUnexpected:    "텍스트 생성 중 알 수 없는 오류가 발생했습니다.",
}

// ContentError is a failure signature decoded from an otherwise-successful
// upstream response, typed at the boundary instead of carried as a raw
// string through the pipeline.
type ContentError struct {
	Kind   Kind
	Detail string // the full field text that matched; operator-facing only
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("upstream content error: %s", e.Kind)
}

// Status returns the HTTP status mapped to the kind.
func (e *ContentError) Status() int {
	return statusByKind[e.Kind]
}

// Message returns the fixed user-facing message for the kind.
func (e *ContentError) Message() string {
	return messageByKind[e.Kind]
}

// Classify scans a result for embedded failure sentinels and returns the
// first match, or nil when the result is clean.
//
// Scan order: slot 0, 1, 2; within a slot title, passage, each question in
// order, each solution in order. Answers are scanned in a separate second
// pass across all slots, and only there does the answer-not-available kind
// count: that marker in an answer field alone is a narrower defect than a
// sentinel in substantive content, so it is checked last and only in its
// own field.
func Classify(r *Result) *ContentError {
	variants := r.Variants()

	for _, c := range variants {
		fields := make([]string, 0, 2+len(c.Question)+len(c.Solution))
		fields = append(fields, c.Title, c.Passage)
		fields = append(fields, c.Question...)
		fields = append(fields, c.Solution...)

		for _, field := range fields {
			if ce := match(field, contentSentinels); ce != nil {
				return ce
			}
		}
	}

	for _, c := range variants {
		for _, field := range c.Answer {
			if ce := match(field, answerSentinels); ce != nil {
				return ce
			}
		}
	}

	return nil
}

func match(field string, sentinels []sentinel) *ContentError {
	for _, s := range sentinels {
		if strings.Contains(field, s.marker) {
			return &ContentError{Kind: s.kind, Detail: field}
		}
	}
	return nil
}
