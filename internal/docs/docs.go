// Package docs registers the OpenAPI document served under /swagger.
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
        "/ask": {
            "post": {
                "description": "Explains a topic and looks up an educational video for it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["professor"],
                "summary": "Ask the professor",
                "parameters": [
                    {
                        "description": "Question",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/professor.StudentQuestion"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/professor.LectureResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "config.ErrorResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "professor.StudentQuestion": {
            "type": "object",
            "required": ["question"],
            "properties": {"question": {"type": "string"}}
        },
        "professor.ProfessorContent": {
            "type": "object",
            "properties": {
                "definition": {"type": "string"},
                "key_notes": {"type": "array", "items": {"type": "string"}},
                "application": {"type": "string"}
            }
        },
        "professor.LectureResponse": {
            "type": "object",
            "properties": {
                "answer": {"$ref": "#/definitions/professor.ProfessorContent"},
                "video_id": {"type": "string", "x-nullable": true}
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
	Title:            "AI Professor API",
	Description:      "Answers study questions with a structured explanation and a lesson video.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
