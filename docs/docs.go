// Package docs holds the swagger spec of the cablestats API.
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
        "/runs": {
            "get": {
                "description": "Get all recorded cable stats runs, newest first",
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "List runs",
                "responses": {
                    "200": {
                        "description": "List of runs",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/model.RunSummary"}
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "string"}
                    }
                }
            }
        },
        "/runs/{id}": {
            "get": {
                "description": "Retrieve a run with its aggregate stats and unit warnings",
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "Get run",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Run ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Run details",
                        "schema": {"$ref": "#/definitions/model.RunSummary"}
                    },
                    "400": {
                        "description": "Invalid run ID",
                        "schema": {"type": "string"}
                    },
                    "404": {
                        "description": "Run not found",
                        "schema": {"type": "string"}
                    }
                }
            }
        },
        "/stats/latest": {
            "get": {
                "description": "Retrieve the aggregate stats of the most recent completed run",
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Latest stats",
                "responses": {
                    "200": {
                        "description": "Latest stats",
                        "schema": {"$ref": "#/definitions/handler.LatestStatsResponse"}
                    },
                    "404": {
                        "description": "No completed run",
                        "schema": {"type": "string"}
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.LatestStatsResponse": {
            "type": "object",
            "properties": {
                "run_id": {"type": "string"},
                "stats": {"$ref": "#/definitions/model.AggregateResult"}
            }
        },
        "model.AggregateResult": {
            "type": "object",
            "properties": {
                "active": {"$ref": "#/definitions/model.CableStats"},
                "planned": {"$ref": "#/definitions/model.CableStats"}
            }
        },
        "model.CableStats": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "length": {"type": "integer"},
                "wrap_earth_count": {"type": "number"}
            }
        },
        "model.RunSummary": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "finished_at": {"type": "string"},
                "id": {"type": "string"},
                "manifest": {"type": "string"},
                "record_count": {"type": "integer"},
                "started_at": {"type": "string"},
                "stats": {"$ref": "#/definitions/model.AggregateResult"},
                "status": {"type": "string"},
                "warnings": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/model.UnitWarning"}
                }
            }
        },
        "model.UnitWarning": {
            "type": "object",
            "properties": {
                "cable_id": {"type": "string"},
                "created_at": {"type": "string"},
                "unit": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Cable Stats API",
	Description:      "Read-only access to recorded submarine cable stats runs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
