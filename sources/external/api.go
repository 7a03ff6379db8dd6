package external

import (
	"declension/sources/declension"
	"declension/sources/dictionary"
	"declension/sources/metrics"
	"declension/sources/platform"
	"declension/sources/texting/format"
	"declension/sources/throttler"
	"declension/sources/tracing"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

const requestIdHeader = "X-Request-Id"

type declensionResponse struct {
	RequestId string `json:"request_id"`
	Number    string `json:"number"`
	Form      string `json:"form"`
	Category  string `json:"category"`
	Phrase    string `json:"phrase"`
}

type phraseResponse struct {
	RequestId string `json:"request_id"`
	Phrase    string `json:"phrase"`
}

type errorResponse struct {
	RequestId string `json:"request_id"`
	Error     string `json:"error"`
}

// ApiHandler serves the declension API:
//
//	GET /v1/declension?number=5&form=день&form=дня&form=дней
//	GET /v1/declension?number=2.5&word=час
//	GET /v1/rubles?amount=3.99
//	GET /v1/age?created_at=2025-03-01T12:00:00Z&lang=ru
//	GET /v1/words
type ApiHandler struct {
	declensioner *declension.Declensioner
	throttler    *throttler.Throttler
	metrics      *metrics.MetricsService
	log          *tracing.Logger
	mux          *http.ServeMux
	now          func() time.Time
}

func NewApiHandler(
	declensioner *declension.Declensioner,
	throttler *throttler.Throttler,
	metrics *metrics.MetricsService,
	log *tracing.Logger,
) *ApiHandler {
	x := &ApiHandler{declensioner: declensioner, throttler: throttler, metrics: metrics, log: log, now: time.Now}
	x.mux = platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
		m.HandleFunc("GET /v1/declension", x.declension)
		m.HandleFunc("GET /v1/rubles", x.rubles)
		m.HandleFunc("GET /v1/age", x.age)
		m.HandleFunc("GET /v1/words", x.words)
	})
	return x
}

func (x *ApiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestId := r.Header.Get(requestIdHeader)
	if requestId == "" {
		requestId = uuid.NewString()
		r.Header.Set(requestIdHeader, requestId)
	}
	w.Header().Set(requestIdHeader, requestId)

	log := x.log.With(tracing.RequestId, requestId, tracing.RemoteAddr, r.RemoteAddr)
	recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	elapsed := tracing.ReportExecution(log, func() {
		if !x.throttler.IsAllowed(clientOf(r)) {
			x.metrics.RecordThrottled()
			writeError(recorder, http.StatusTooManyRequests, requestId, errors.New("too many requests"))
			return
		}
		x.mux.ServeHTTP(recorder, r)
	}, func(l *tracing.Logger) {
		l.I("Request handled", "method", r.Method, "path", r.URL.Path, tracing.HttpStatus, recorder.status)
	})

	x.metrics.RecordHttpRequest(recorder.status, elapsed)
}

func (x *ApiHandler) declension(w http.ResponseWriter, r *http.Request) {
	requestId := r.Header.Get(requestIdHeader)
	query := r.URL.Query()

	number, err := format.ParseQuantity(query.Get("number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, requestId, err)
		return
	}

	var result declension.Result
	if word := query.Get("word"); word != "" {
		result, err = x.declensioner.SelectWord(number, word)
	} else {
		result, err = x.declensioner.Select(number, query["form"])
	}

	switch {
	case errors.Is(err, format.ErrInvalidFormSet), errors.Is(err, dictionary.ErrUnknownWord):
		writeError(w, http.StatusUnprocessableEntity, requestId, err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, requestId, err)
		return
	}

	writeJson(w, http.StatusOK, declensionResponse{
		RequestId: requestId,
		Number:    result.Number.String(),
		Form:      result.Form,
		Category:  result.Category.String(),
		Phrase:    result.Phrase,
	})
}

func (x *ApiHandler) rubles(w http.ResponseWriter, r *http.Request) {
	requestId := r.Header.Get(requestIdHeader)

	amount, err := format.ParseQuantity(r.URL.Query().Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, requestId, err)
		return
	}

	writeJson(w, http.StatusOK, phraseResponse{RequestId: requestId, Phrase: x.declensioner.Rubles(amount)})
}

func (x *ApiHandler) age(w http.ResponseWriter, r *http.Request) {
	requestId := r.Header.Get(requestIdHeader)
	query := r.URL.Query()

	createdAt, err := time.Parse(time.RFC3339, query.Get("created_at"))
	if err != nil {
		writeError(w, http.StatusBadRequest, requestId, errors.New("created_at must be an RFC 3339 timestamp"))
		return
	}

	lang := language.Russian
	if value := query.Get("lang"); value != "" {
		if lang, err = language.Parse(value); err != nil {
			writeError(w, http.StatusBadRequest, requestId, err)
			return
		}
	}

	writeJson(w, http.StatusOK, phraseResponse{RequestId: requestId, Phrase: x.declensioner.Age(createdAt, x.now(), lang)})
}

func (x *ApiHandler) words(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, map[string][]string{"words": x.declensioner.Lemmas()})
}

func clientOf(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func writeError(w http.ResponseWriter, status int, requestId string, err error) {
	writeJson(w, status, errorResponse{RequestId: requestId, Error: err.Error()})
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
