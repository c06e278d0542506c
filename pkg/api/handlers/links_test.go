package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"link-admin/pkg/api/handlers"
	"link-admin/pkg/db"
	"link-admin/pkg/models"
	"link-admin/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LinkHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *LinkHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	service := services.NewLinkService(db.New())

	r := gin.New()
	r.GET("/links", handlers.ListLinks(service))
	r.POST("/links", handlers.CreateLink(service))
	r.PUT("/links/:id", handlers.UpdateLink(service))
	r.DELETE("/links/:id", handlers.DeleteLink(service))
	r.GET("/:name", handlers.Redirect(service))
	suite.router = r
}

func (suite *LinkHandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LinkHandlerTestSuite) create(name, link string) models.Link {
	w := suite.do(http.MethodPost, "/links", gin.H{"name": name, "link": link})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var env models.Envelope[models.Link]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	suite.Require().True(env.Success)
	return env.Data
}

func (suite *LinkHandlerTestSuite) message(w *httptest.ResponseRecorder) string {
	var env models.Envelope[any]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	suite.False(env.Success)
	return env.Message
}

func (suite *LinkHandlerTestSuite) TestCreateAssignsSequentialIDs() {
	first := suite.create("Docs", "https://docs.example.com")
	second := suite.create("wiki", "https://wiki.example.com")

	suite.Equal(models.LinkID(1), first.ID)
	suite.Equal(models.LinkID(2), second.ID)
	suite.Equal("docs", first.Name)
	suite.True(first.Enabled)
	suite.Zero(first.TimesUsed)
}

func (suite *LinkHandlerTestSuite) TestListKeepsInsertionOrder() {
	suite.create("zeta", "https://z.example.com")
	suite.create("alpha", "https://a.example.com")

	w := suite.do(http.MethodGet, "/links", nil)
	suite.Equal(http.StatusOK, w.Code)

	var env models.Envelope[[]models.Link]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	suite.True(env.Success)
	suite.Require().Len(env.Data, 2)
	suite.Equal("zeta", env.Data[0].Name)
	suite.Equal("alpha", env.Data[1].Name)
}

func (suite *LinkHandlerTestSuite) TestCreateDuplicateNameConflicts() {
	suite.create("docs", "https://docs.example.com")

	w := suite.do(http.MethodPost, "/links", gin.H{"name": "DOCS", "link": "https://other.example.com"})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.message(w), "links_name_key")
}

func (suite *LinkHandlerTestSuite) TestCreateRejectsSchemelessLink() {
	w := suite.do(http.MethodPost, "/links", gin.H{"name": "docs", "link": "docs.example.com"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("the link scheme must be http or https", suite.message(w))
}

func (suite *LinkHandlerTestSuite) TestCreateRequiresFields() {
	w := suite.do(http.MethodPost, "/links", gin.H{"name": "docs"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.NotEmpty(suite.message(w))
}

func (suite *LinkHandlerTestSuite) TestUpdateIsPartialAndReturnsNoContent() {
	link := suite.create("docs", "https://docs.example.com")

	w := suite.do(http.MethodPut, "/links/1", gin.H{"enabled": false})
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())

	w = suite.do(http.MethodGet, "/links", nil)
	var env models.Envelope[[]models.Link]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	suite.Require().Len(env.Data, 1)
	suite.Equal(link.Name, env.Data[0].Name)
	suite.Equal(link.Link, env.Data[0].Link)
	suite.False(env.Data[0].Enabled)
}

func (suite *LinkHandlerTestSuite) TestUpdateRequiresEnabled() {
	suite.create("docs", "https://docs.example.com")

	w := suite.do(http.MethodPut, "/links/1", gin.H{"name": "handbook"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LinkHandlerTestSuite) TestUpdateUnknownLink() {
	w := suite.do(http.MethodPut, "/links/42", gin.H{"enabled": true})
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("record not found", suite.message(w))
}

func (suite *LinkHandlerTestSuite) TestDelete() {
	suite.create("docs", "https://docs.example.com")

	w := suite.do(http.MethodDelete, "/links/1", nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodDelete, "/links/1", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("record not found", suite.message(w))
}

func (suite *LinkHandlerTestSuite) TestInvalidID() {
	w := suite.do(http.MethodDelete, "/links/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("invalid link ID", suite.message(w))
}

func (suite *LinkHandlerTestSuite) TestRedirectCountsUses() {
	suite.create("docs", "https://docs.example.com")

	w := suite.do(http.MethodGet, "/docs", nil)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("https://docs.example.com", w.Header().Get("Location"))

	w = suite.do(http.MethodGet, "/links", nil)
	var env models.Envelope[[]models.Link]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	suite.Equal(int64(1), env.Data[0].TimesUsed)
}

func (suite *LinkHandlerTestSuite) TestRedirectDisabledIsNotFound() {
	suite.create("docs", "https://docs.example.com")
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPut, "/links/1", gin.H{"enabled": false}).Code)

	w := suite.do(http.MethodGet, "/docs", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestLinkHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LinkHandlerTestSuite))
}
