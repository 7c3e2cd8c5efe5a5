package phoneformat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apphttp "contact_phone_backend/internal/http"
	"contact_phone_backend/platform/httpkit"
	"contact_phone_backend/platform/logger"
	"contact_phone_backend/platform/phone"
	"contact_phone_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneConfig struct {
	rules      phone.Rules
	batchLimit int
}

func (c phoneConfig) GetPhoneRules() phone.Rules  { return c.rules }
func (c phoneConfig) GetPhoneRulesSource() string { return "test" }
func (c phoneConfig) GetBatchLimit() int          { return c.batchLimit }

func newTestEngine(t *testing.T, batchLimit int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rules := phone.DefaultRules()
	module := NewModule(phoneConfig{rules: rules, batchLimit: batchLimit}, validator.New(phone.New(rules)), logger.Discard())

	engine := gin.New()
	module.RegisterRoutes(&apphttp.RouterContext{Engine: engine, V1: engine.Group("/api/v1")})
	return engine
}

func post(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/phone"+path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestFormatEndpoint(t *testing.T) {
	engine := newTestEngine(t, 10)

	w := post(t, engine, "/format", FormatRequest{Number: "+8615633944345"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[FormatResponse](t, w)
	assert.Equal(t, "+86 156-3394-4345", resp.Formatted)
	assert.Equal(t, "+8615633944345", resp.Normalized)
	assert.True(t, resp.Valid)

	w = post(t, engine, "/format", FormatRequest{Number: "+860156-3394-4345", DeleteZero: true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "+86 156-3394-4345", decode[FormatResponse](t, w).Formatted)
}

func TestNormalizeEndpoint(t *testing.T) {
	engine := newTestEngine(t, 10)

	w := post(t, engine, "/normalize", NumberRequest{Number: "+86 156-3394-4345"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[NormalizeResponse](t, w)
	assert.Equal(t, "+8615633944345", resp.Normalized)
	assert.Equal(t, "+8615633944345", resp.E164)
}

func TestValidateEndpoint(t *testing.T) {
	engine := newTestEngine(t, 10)

	w := post(t, engine, "/validate", NumberRequest{Number: "15633944345"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[ValidateResponse](t, w).Valid)

	w = post(t, engine, "/validate", NumberRequest{Number: "123456"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[ValidateResponse](t, w).Valid)
}

func TestDelZeroEndpoint(t *testing.T) {
	engine := newTestEngine(t, 10)

	w := post(t, engine, "/del-zero", NumberRequest{Number: "+860156334345"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "+86156334345", decode[DelZeroResponse](t, w).Result)
}

func TestDescribeEndpoint(t *testing.T) {
	engine := newTestEngine(t, 10)

	w := post(t, engine, "/describe", DescribeRequest{Number: "+86 156-3394-4345"})
	require.Equal(t, http.StatusOK, w.Code)
	details := decode[phone.Details](t, w)
	assert.Equal(t, "CN", details.Region)
	assert.Equal(t, 86, details.CountryCode)

	w = post(t, engine, "/describe", DescribeRequest{Number: "12"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, engine, "/describe", DescribeRequest{Number: "15633944345", Region: "CHN"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatchEndpoint(t *testing.T) {
	engine := newTestEngine(t, 3)

	w := post(t, engine, "/batch", BatchRequest{Numbers: []string{"+8615633944345", "bogus", "+86 0156 3394 4345"}, DeleteZero: true})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[BatchResponse](t, w)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "+86 156-3394-4345", resp.Items[0].Formatted)
	assert.Equal(t, "", resp.Items[1].Formatted)
	assert.False(t, resp.Items[1].Valid)
	assert.Equal(t, "+86 156-3394-4345", resp.Items[2].Formatted)

	w = post(t, engine, "/batch", BatchRequest{Numbers: []string{"1", "2", "3", "4"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errResp := decode[httpkit.ErrorResponse](t, w)
	assert.Equal(t, "at most 3 numbers per batch", errResp.Error)

	w = post(t, engine, "/batch", BatchRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedJSON(t *testing.T) {
	engine := newTestEngine(t, 10)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/phone/format", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgInvalidRequest, decode[httpkit.ErrorResponse](t, w).Error)
}

func TestMissingNumber(t *testing.T) {
	engine := newTestEngine(t, 10)

	w := post(t, engine, "/format", map[string]any{"deleteZero": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgValidationFailed, decode[httpkit.ErrorResponse](t, w).Error)
}
