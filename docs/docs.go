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
        "/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search cities by name or state",
                "parameters": [
                    {"type": "string", "description": "City or state name fragment", "name": "q", "in": "query", "required": true},
                    {"type": "string", "description": "State code or name", "name": "state", "in": "query"},
                    {"type": "integer", "description": "Maximum results (default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.SearchResult"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/places/autocomplete": {
            "get": {
                "produces": ["application/json"],
                "tags": ["geocoding"],
                "summary": "Suggest places for partial input",
                "parameters": [
                    {"type": "string", "description": "Partial place name", "name": "input", "in": "query", "required": true},
                    {"type": "string", "description": "Debounce key", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Prediction"}}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/geocode": {
            "get": {
                "produces": ["application/json"],
                "tags": ["geocoding"],
                "summary": "Resolve an address to a location",
                "parameters": [
                    {"type": "string", "description": "Address text", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Location"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "504": {"description": "Gateway Timeout", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/reverse-geocode": {
            "get": {
                "produces": ["application/json"],
                "tags": ["geocoding"],
                "summary": "Resolve coordinates to an address",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lng", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Location"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/device-location": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["geocoding"],
                "summary": "Resolve a position reported by the client device",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Location"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/approximate-location": {
            "get": {
                "produces": ["application/json"],
                "tags": ["geocoding"],
                "summary": "Estimate the caller's location from its IP address",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Location"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/nearby": {
            "get": {
                "produces": ["application/json"],
                "tags": ["nearby"],
                "summary": "Service providers within a radius, nearest first",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lng", "in": "query", "required": true},
                    {"type": "number", "description": "Radius in km, 1 to 100 (default 10)", "name": "radius", "in": "query"},
                    {"type": "string", "description": "Provider role or category", "name": "role", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/nearby/cities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["nearby"],
                "summary": "Cities within a radius, nearest first",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lng", "in": "query", "required": true},
                    {"type": "number", "description": "Radius in km, 1 to 100 (default 10)", "name": "radius", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/entities/{id}/location": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Current location, history and approximate location of an entity",
                "parameters": [
                    {"type": "string", "description": "User or provider ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.EntityLocation"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Replace the current location of an entity",
                "parameters": [
                    {"type": "string", "description": "User or provider ID", "name": "id", "in": "path", "required": true},
                    {"description": "Position, optional address and optional provider role", "name": "location", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateLocationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.EntityLocation"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "field": {"type": "string"},
                "kind": {"type": "string"}
            }
        },
        "models.Coordinates": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lng": {"type": "number"},
                "accuracy": {"type": "number"}
            }
        },
        "models.Location": {
            "type": "object",
            "properties": {
                "coordinates": {"$ref": "#/definitions/models.Coordinates"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "stateCode": {"type": "string"},
                "pincode": {"type": "string"},
                "timestamp": {"type": "string"},
                "verified": {"type": "boolean"},
                "method": {"type": "string", "enum": ["gps", "manual", "auto"]}
            }
        },
        "models.HistoryEntry": {
            "type": "object",
            "properties": {
                "coordinates": {"$ref": "#/definitions/models.Coordinates"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "timestamp": {"type": "string"},
                "method": {"type": "string"}
            }
        },
        "models.ApproximateLocation": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "state": {"type": "string"},
                "region": {"type": "string"},
                "lastUpdated": {"type": "string"}
            }
        },
        "handler.updateLocationRequest": {
            "type": "object",
            "required": ["lat", "lng"],
            "properties": {
                "lat": {"type": "number"},
                "lng": {"type": "number"},
                "accuracy": {"type": "number"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "stateCode": {"type": "string"},
                "pincode": {"type": "string"},
                "method": {"type": "string", "enum": ["gps", "manual", "auto"]},
                "role": {"type": "string"}
            }
        },
        "models.EntityLocation": {
            "type": "object",
            "properties": {
                "entityId": {"type": "string"},
                "role": {"type": "string"},
                "current": {"$ref": "#/definitions/models.Location"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/models.HistoryEntry"}},
                "approximateLocation": {"$ref": "#/definitions/models.ApproximateLocation"},
                "version": {"type": "integer"}
            }
        },
        "models.SearchResult": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "state": {"type": "string"},
                "stateCode": {"type": "string"},
                "lat": {"type": "number"},
                "lng": {"type": "number"}
            }
        },
        "models.Prediction": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "placeId": {"type": "string"},
                "mainText": {"type": "string"},
                "secondaryText": {"type": "string"}
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
	Title:            "Locality API",
	Description:      "Location core of a hyperlocal marketplace: city search, geocoding, proximity and location history for India.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
