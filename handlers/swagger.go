package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the portal API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>placementhub — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the portal endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "placementhub-portal", "version": "v0.1.0" },
  "paths": {
    "/api/auth/login": {
      "post": {
        "summary": "Sign in by email (find-or-create profile)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["email"],"properties":{"email":{"type":"string"},"name":{"type":"string"},"role":{"type":"string","enum":["student","mentor","placement","recruiter"]},"department":{"type":"string"}}}}}},
        "responses": { "200": { "description": "access token and user" }, "400": { "description": "invalid input" }, "503": { "description": "store unavailable" } }
      }
    },
    "/api/auth/logout": {
      "post": { "summary": "Destroy the session behind the bearer token", "responses": { "204": { "description": "logged out" }, "401": { "description": "invalid token" } } }
    },
    "/api/auth/me": {
      "get": { "summary": "Identity the bearer token resolves to", "responses": { "200": { "description": "user" }, "401": { "description": "not signed in" } } }
    },
    "/api/openings": {
      "get": { "summary": "List openings", "responses": { "200": { "description": "array of openings" } } },
      "post": { "summary": "Post an opening (placement role only)", "responses": { "201": { "description": "created" }, "400": { "description": "invalid input" }, "403": { "description": "role not permitted" } } }
    },
    "/api/applications": {
      "get": { "summary": "List the acting student's applications", "responses": { "200": { "description": "array of applications" }, "403": { "description": "role not permitted" } } },
      "post": { "summary": "Apply to an opening (student role only)", "responses": { "201": { "description": "created" }, "403": { "description": "role not permitted" }, "409": { "description": "already applied" } } }
    },
    "/api/summary": {
      "get": { "summary": "Dashboard counters and applied-opening set", "responses": { "200": { "description": "summary" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
