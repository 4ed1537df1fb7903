// Package docs registers the Swagger document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/delete": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Delete the authenticated user's account. user_id must be the caller's own ID.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Delete account",
                "parameters": [
                    {"type": "string", "description": "ID of the account to delete", "name": "user_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "User deleted", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "400": {"description": "User ID is required", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Not the caller's account", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Login with email and password to get a JWT access token",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Login user",
                "parameters": [
                    {"description": "Login request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/models.LoginResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get the authenticated user's account information",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Get current user",
                "responses": {
                    "200": {"description": "User account", "schema": {"$ref": "#/definitions/models.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Exchange a valid access token for one with a fresh expiry",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Refresh access token",
                "responses": {
                    "200": {"description": "New token", "schema": {"$ref": "#/definitions/models.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "description": "Register a new user with username, email and password. Accepts JSON or form data.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Signup request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "User created", "schema": {"$ref": "#/definitions/models.SignupResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Email already exists", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the server is running and healthy",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Server is healthy", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "/job-matching": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Search job listings by keywords and location, extract each description's requirements and score them against the given skills and education. Listings scoring 0 are dropped.",
                "produces": ["application/json"],
                "tags": ["Jobs"],
                "summary": "Match jobs",
                "parameters": [
                    {"type": "string", "example": "United States", "description": "Job location", "name": "location", "in": "query", "required": true},
                    {"type": "string", "example": "python developer", "description": "Search keywords", "name": "keywords", "in": "query", "required": true},
                    {"type": "string", "example": "Bachelor's Degree", "description": "Education, matched exactly", "name": "education", "in": "query", "required": true},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Skills", "name": "skills", "in": "query", "required": true},
                    {"type": "integer", "default": 1, "description": "Result offset (1-500)", "name": "start", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Scored listings", "schema": {"$ref": "#/definitions/models.JobMatchingResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Job site unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Same as GET, with the request as a JSON body.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Jobs"],
                "summary": "Match jobs",
                "parameters": [
                    {"description": "Job matching request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.JobMatchingRequest"}}
                ],
                "responses": {
                    "200": {"description": "Scored listings", "schema": {"$ref": "#/definitions/models.JobMatchingResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Job site unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/tools": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get a list of all pipeline tools exposed to MCP clients",
                "produces": ["application/json"],
                "tags": ["Tools"],
                "summary": "List available tools",
                "responses": {
                    "200": {"description": "List of tools", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "description": "Standard error response",
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 400},
                "details": {"type": "string", "example": "skills is required"},
                "error": {"type": "string", "example": "Invalid request"}
            }
        },
        "models.HealthResponse": {
            "description": "Server health status",
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "timestamp": {"type": "string", "example": "2024-01-15T10:30:00Z"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "models.JobMatchingRequest": {
            "description": "Job matching request",
            "type": "object",
            "required": ["education", "keywords", "location", "skills"],
            "properties": {
                "education": {"type": "string", "example": "Bachelor's Degree"},
                "keywords": {"type": "string", "example": "python developer"},
                "location": {"type": "string", "example": "United States"},
                "skills": {"type": "array", "items": {"type": "string"}, "example": ["Python", "SQL"]},
                "start": {"type": "integer", "maximum": 500, "minimum": 1, "example": 1}
            }
        },
        "models.JobMatchingResponse": {
            "description": "Job matching result, ordered by score",
            "type": "object",
            "properties": {
                "job_listings": {"type": "array", "items": {"$ref": "#/definitions/models.ScoredListing"}}
            }
        },
        "models.LoginRequest": {
            "description": "User login request",
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "user@example.com"},
                "password": {"type": "string", "example": "password123"}
            }
        },
        "models.LoginResponse": {
            "description": "Authenticated user with access token",
            "type": "object",
            "properties": {
                "access_token": {"type": "string", "example": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."},
                "created_at": {"type": "string"},
                "email": {"type": "string", "example": "user@example.com"},
                "id": {"type": "string", "example": "1"},
                "is_active": {"type": "boolean", "example": true},
                "is_admin": {"type": "boolean", "example": false},
                "updated_at": {"type": "string"},
                "username": {"type": "string", "example": "jdoe"}
            }
        },
        "models.MessageResponse": {
            "description": "Message response",
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "User has successfully delete"}
            }
        },
        "models.ScoredListing": {
            "description": "Matched job listing with its score",
            "type": "object",
            "properties": {
                "company": {"type": "string", "example": "Acme"},
                "description": {"type": "string", "example": "We are looking for a Python engineer..."},
                "score": {"type": "number", "example": 1.5},
                "title": {"type": "string", "example": "Backend Engineer"}
            }
        },
        "models.SignupRequest": {
            "description": "User registration request",
            "type": "object",
            "required": ["confirm_password", "email", "password", "username"],
            "properties": {
                "confirm_password": {"type": "string", "example": "password123"},
                "email": {"type": "string", "example": "user@example.com"},
                "password": {"type": "string", "minLength": 6, "example": "password123"},
                "username": {"type": "string", "maxLength": 10, "minLength": 2, "example": "jdoe"}
            }
        },
        "models.SignupResponse": {
            "description": "Registration response",
            "type": "object",
            "properties": {
                "login": {"type": "string", "example": "http://localhost:8080/api/auth/login"},
                "message": {"type": "string", "example": "User has successfully created"}
            }
        },
        "models.TokenResponse": {
            "description": "Access token",
            "type": "object",
            "properties": {
                "access_token": {"type": "string", "example": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."}
            }
        },
        "models.User": {
            "description": "User account information",
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string", "example": "user@example.com"},
                "id": {"type": "string", "example": "1"},
                "is_active": {"type": "boolean", "example": true},
                "is_admin": {"type": "boolean", "example": false},
                "updated_at": {"type": "string"},
                "username": {"type": "string", "example": "jdoe"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "JobMatch API",
	Description:      "Job matching backend: scrapes current listings, extracts each description's requirements and scores them against a candidate's skills and education.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
