package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"watch-shop/config"
	"watch-shop/logger"
	"watch-shop/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("SMTP_HOST", "")

	config.AppConfig = &config.Config{
		AppEnv:           "test",
		PageSize:         9,
		PriceMarkup:      5000,
		VendorName:       "Samson",
		VendorPhoneLocal: "07069761167",
		VendorPhoneIntl:  "+2347069761167",
		VendorEmail:      "otalorsamson50@gmail.com",
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "watches.json")
	data := `[
		{"name":"Rolex X","price":"10000"},
		{"name":"Omega Y","price":"20000"},
		{"name":"Seiko Z","price":"7000"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	catalogRepo := repositories.NewCatalogRepository()
	require.NoError(t, catalogRepo.LoadFromFile(path, config.AppConfig.PriceMarkup))

	router := gin.New()
	SetupRoutes(router, catalogRepo, &logger.Logger{})
	return router
}

func doRequest(router *gin.Engine, method, target string, cookies []*http.Cookie) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(method, target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	body := map[string]interface{}{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestGetAllProducts(t *testing.T) {
	router := setupTestRouter(t)

	w, body := doRequest(router, "GET", "/products", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, true, body["success"])

	data := body["data"].([]interface{})
	assert.Len(t, data, 3)

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(3), meta["total_items"])
	assert.Equal(t, float64(1), meta["total_pages"])

	first := data[0].(map[string]interface{})
	assert.Equal(t, "Rolex X", first["title"])
	assert.Equal(t, float64(15000), first["price"])
	assert.Equal(t, "₦15,000", first["price_display"])
}

func TestGetAllProductsSearchAndSort(t *testing.T) {
	router := setupTestRouter(t)

	_, body := doRequest(router, "GET", "/products?search=rolex", nil)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Rolex X", data[0].(map[string]interface{})["title"])

	_, body = doRequest(router, "GET", "/products?sort=low", nil)
	data = body["data"].([]interface{})
	require.Len(t, data, 3)
	assert.Equal(t, "Seiko Z", data[0].(map[string]interface{})["title"])
}

func TestGetProductByID(t *testing.T) {
	router := setupTestRouter(t)

	w, body := doRequest(router, "GET", "/products/2", nil)
	require.Equal(t, 200, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Omega Y", data["title"])

	w, _ = doRequest(router, "GET", "/products/99", nil)
	assert.Equal(t, 404, w.Code)
}

func TestGetAllBrands(t *testing.T) {
	router := setupTestRouter(t)

	w, body := doRequest(router, "GET", "/brands", nil)
	require.Equal(t, 200, w.Code)
	data := body["data"].([]interface{})
	require.Len(t, data, 3)
	assert.Equal(t, "Rolex", data[0].(map[string]interface{})["name"])
}

func TestCartFlow(t *testing.T) {
	router := setupTestRouter(t)

	w, body := doRequest(router, "POST", "/cart/items/1", nil)
	require.Equal(t, 200, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total_count"])

	_, body = doRequest(router, "POST", "/cart/items/1", cookies)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total_count"])
	assert.Equal(t, float64(30000), data["total_value"])

	_, body = doRequest(router, "POST", "/cart/items/1/decrement", cookies)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total_count"])

	_, body = doRequest(router, "DELETE", "/cart/items/1", cookies)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_count"])
	assert.Len(t, data["lines"], 0)
}

func TestAddUnknownProduct(t *testing.T) {
	router := setupTestRouter(t)

	w, body := doRequest(router, "POST", "/cart/items/99", nil)
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestCheckout(t *testing.T) {
	router := setupTestRouter(t)

	w, _ := doRequest(router, "POST", "/cart/items/1", nil)
	cookies := w.Result().Cookies()

	w, body := doRequest(router, "GET", "/cart/checkout", cookies)
	require.Equal(t, 200, w.Code)

	data := body["data"].(map[string]interface{})
	summary := data["summary"].(string)
	assert.True(t, strings.HasPrefix(summary, "Hello Samson,"))
	assert.Contains(t, summary, "- Rolex X x 1 — ₦15,000 each")
	assert.Contains(t, summary, "Total: ₦15,000")

	assert.True(t, strings.HasPrefix(data["chat_link"].(string), "https://wa.me/2347069761167?text="))
	assert.True(t, strings.HasPrefix(data["mail_link"].(string), "mailto:otalorsamson50@gmail.com?"))
}

func TestEnquiryWithoutSMTP(t *testing.T) {
	router := setupTestRouter(t)

	w, body := doRequest(router, "POST", "/cart/enquiry", nil)
	assert.Equal(t, 503, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestVendorAndHealth(t *testing.T) {
	router := setupTestRouter(t)

	w, body := doRequest(router, "GET", "/vendor", nil)
	require.Equal(t, 200, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Samson", data["name"])

	w, _ = doRequest(router, "GET", "/health", nil)
	assert.Equal(t, 200, w.Code)
}
