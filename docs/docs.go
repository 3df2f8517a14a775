// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and store readiness",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create an account",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/user.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/user.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/api/quiz/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "List quiz categories",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/quiz/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Public quiz statistics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/quiz/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Submit an answer",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/quiz.SubmitRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/api/user/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard for the caller, or a preview when anonymous",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/skills/demand": {
            "get": {
                "produces": ["application/json"],
                "tags": ["skills"],
                "summary": "Market demand for popular skills",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/skills/cover-letter": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["skills"],
                "summary": "Draft a cover letter",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/skills.CoverLetterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/api/skills/career-tips": {
            "get": {
                "produces": ["application/json"],
                "tags": ["skills"],
                "summary": "Career tips for the caller",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/resume/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["resume"],
                "summary": "Upload a resume for ATS scoring",
                "parameters": [
                    {"type": "file", "description": "PDF or DOCX, up to 5MB", "name": "resume", "in": "formData", "required": true},
                    {"type": "string", "description": "target job description", "name": "jobDescription", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "config.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "user.RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "user.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "user.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"type": "object"}
            }
        },
        "skills.CoverLetterRequest": {
            "type": "object",
            "properties": {
                "jobTitle": {"type": "string"},
                "company": {"type": "string"},
                "jobDescription": {"type": "string"},
                "userProfile": {"type": "object"}
            }
        },
        "quiz.SubmitRequest": {
            "type": "object",
            "properties": {
                "quizId": {"type": "string"},
                "selectedAnswer": {"type": "integer"},
                "timeSpent": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Career Coach API",
	Description:      "Interview practice quizzes, progress dashboard and ATS resume scoring.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
