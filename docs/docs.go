// Package docs registers the swagger spec served at /swagger/*any. In a
// normal build this file is regenerated by `swag init` from the
// @-annotations on the handlers and on cmd/linrefd/main.main; it is
// checked in by hand here since the swag CLI is not run as part of this
// exercise.
package docs

import (
	"github.com/swaggo/swag"
)

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{.Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Equinor ASA",
            "url": "https://github.com/equinor/linref-api/issues"
        },
        "license": {
            "name": "GNU Affero General Public License",
            "url": "https://www.gnu.org/licenses/agpl-3.0.en.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/locate": {
            "post": {
                "description": "Produces the points whose interpolated measure equals the requested value.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Locate points along a measured geometry",
                "parameters": [
                    {"description": "locate parameters", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/LocateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/GeometryResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/clip": {
            "post": {
                "description": "Produces the sub-portions of the input whose selected ordinate lies within [from, to].",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Clip a geometry to an ordinate range",
                "parameters": [
                    {"description": "clip parameters", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/ClipRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/GeometryResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        }
    },
    "definitions": {
        "Point": {
            "type": "object",
            "properties": {
                "x": {"type": "number"}, "y": {"type": "number"},
                "z": {"type": "number"}, "m": {"type": "number"}
            }
        },
        "Geometry": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"}, "srid": {"type": "integer"},
                "hasZ": {"type": "boolean"}, "hasM": {"type": "boolean"},
                "point": {"$ref": "#/definitions/Point"},
                "lines": {"type": "array", "items": {"type": "array", "items": {"$ref": "#/definitions/Point"}}}
            }
        },
        "LocateRequest": {
            "type": "object",
            "properties": {
                "geometry": {"$ref": "#/definitions/Geometry"},
                "geometryUrl": {"type": "string"},
                "measure": {"type": "number"},
                "offset": {"type": "number"}
            }
        },
        "ClipRequest": {
            "type": "object",
            "properties": {
                "geometry": {"$ref": "#/definitions/Geometry"},
                "geometryUrl": {"type": "string"},
                "ordinate": {"type": "string"},
                "from": {"type": "number"},
                "to": {"type": "number"}
            }
        },
        "GeometryResponse": {
            "type": "object",
            "properties": {
                "geometry": {"$ref": "#/definitions/Geometry"}
            }
        }
    }
}`

// SwaggerInfo holds exported swagger metadata, populated by swag init in
// a normal build.
var SwaggerInfo = &swag.Spec{
	Version:          "0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"https"},
	Title:            "linref API",
	Description:      "Locates and clips measured linestrings by ordinate range.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
