// Package docs registers the swagger specification served at /swagger/.
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
        "/api/v1/imports": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "summary": "Import hero and payment exports",
                "parameters": [
                    {"type": "file", "name": "heroes", "in": "formData", "required": true},
                    {"type": "file", "name": "payments", "in": "formData", "required": true}
                ],
                "responses": {"200": {"description": "import report"}}
            }
        },
        "/api/v1/banners": {
            "get": {
                "produces": ["application/json"],
                "summary": "List banners, optionally filtered by status substring",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"}
                ],
                "responses": {"200": {"description": "banner list"}}
            }
        },
        "/api/v1/banners/{banner_id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get one banner by ID",
                "parameters": [
                    {"type": "string", "name": "banner_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "banner"}, "404": {"description": "not found"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Update workflow fields on a banner",
                "parameters": [
                    {"type": "string", "name": "banner_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "updated banner"}, "404": {"description": "not found"}}
            }
        },
        "/api/v1/banners/update-by-name": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Update one field on the banner matching a hero name fragment",
                "responses": {
                    "200": {"description": "updated banner"},
                    "404": {"description": "no banner matches"},
                    "409": {"description": "fragment is ambiguous; candidates returned"}
                }
            }
        },
        "/api/v1/summary": {
            "get": {
                "produces": ["application/json"],
                "summary": "Banner counts grouped by derived status",
                "responses": {"200": {"description": "summary"}}
            }
        },
        "/api/v1/notifications/proofs": {
            "post": {
                "produces": ["application/json"],
                "summary": "Send proof-ready notifications for eligible banners",
                "responses": {"200": {"description": "send stats"}}
            }
        },
        "/api/v1/notifications/approvals": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Apply approval replies to awaiting banners",
                "responses": {"200": {"description": "approval results"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Hometown Hero Banner API",
	Description:      "Import reconciliation, banner workflow tracking, and sponsor notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
