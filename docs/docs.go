package docs

import "github.com/swaggo/swag"

// docTemplate - swagger документ, отдаётся на /swagger/*.
// Правится вместе с аннотациями хендлеров
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
        "/api/v1/coverage": {
            "get": {
                "description": "Посещённые тайлы zoom 14, максимальный полностью посещённый квадрат и кластер внутренних тайлов",
                "produces": ["application/json"],
                "tags": ["Coverage"],
                "summary": "Покрытие тайлами",
                "parameters": [
                    {"type": "integer", "default": 80, "description": "Размер окна поиска квадрата (чётное число)", "name": "window", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/coverage.geojson": {
            "get": {
                "description": "FeatureCollection: тайлы (kind=tile), кластер (kind=cluster) и максимальный квадрат (kind=maxblock)",
                "produces": ["application/json"],
                "tags": ["Coverage"],
                "summary": "Покрытие в формате GeoJSON",
                "parameters": [
                    {"type": "integer", "default": 80, "description": "Размер окна поиска квадрата (чётное число)", "name": "window", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/tiles/{x}/{y}/polygon": {
            "get": {
                "description": "Углы тайла zoom 14 в порядке [top,left], [top,right], [bottom,right], [bottom,left]",
                "produces": ["application/json"],
                "tags": ["Coverage"],
                "summary": "Полигон тайла",
                "parameters": [
                    {"type": "integer", "description": "X тайла", "name": "x", "in": "path", "required": true},
                    {"type": "integer", "description": "Y тайла", "name": "y", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/rides": {
            "get": {
                "description": "Метаданные поездок и закодированные маршруты, по возрастанию даты",
                "produces": ["application/json"],
                "tags": ["Rides"],
                "summary": "Список поездок",
                "parameters": [
                    {"type": "string", "description": "Начало периода, RFC3339", "name": "since", "in": "query"},
                    {"type": "string", "description": "Конец периода, RFC3339", "name": "until", "in": "query"},
                    {"type": "integer", "description": "Максимальное количество", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Сохраняет поездку (upsert по id) и сбрасывает кеш покрытия",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Rides"],
                "summary": "Сохранить поездку",
                "parameters": [
                    {"description": "Поездка", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateRideRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/sync": {
            "post": {
                "description": "Загружает новые активности типа Ride",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sync"],
                "summary": "Синхронизация поездок",
                "parameters": [
                    {"description": "Токен или OAuth код", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/dto.SyncRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "description": "Возвращает агрегированную статистику по всем сохранённым поездкам",
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "Get ride statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/api/v1/ready": {
            "get": {
                "description": "Проверяет доступность Postgres и Redis",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateRideRequest": {
            "type": "object",
            "required": ["id", "title", "date", "polyline"],
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "dist": {"type": "number"},
                "date": {"type": "string"},
                "max": {"type": "number"},
                "avg": {"type": "number"},
                "net": {"type": "integer"},
                "gross": {"type": "integer"},
                "elev": {"type": "number"},
                "polyline": {"type": "string"}
            }
        },
        "dto.SyncRequest": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "time_ms": {"type": "number"},
                "cached": {"type": "boolean"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tile Explorer API",
	Description:      "Покрытие тайлами zoom 14 по велопоездкам",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
