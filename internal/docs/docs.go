// Package docs registra el documento OpenAPI servido en /swagger/*.
// Se mantiene a mano a partir de las anotaciones godoc de los handlers.
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
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Healthcheck",
                "responses": {
                    "200": {"description": "ok", "schema": {"type": "string"}}
                }
            }
        },
        "/pets": {
            "get": {
                "description": "Lista todas las mascotas del store, en el orden del store.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.listResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/pets.listResponse"}}
                }
            }
        },
        "/pets/{petID}/profile": {
            "get": {
                "description": "Carga en paralelo la mascota y sus logs de peso, condición corporal y visitas; devuelve el resumen del mes, el estado de salud y la proyección del tab pedido.",
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Perfil de mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true},
                    {"enum": ["Weight_Logs", "Body_Condition", "Vet_Visits"], "type": "string", "description": "Tab activo", "name": "tab", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/profiles.profileResponse"}},
                    "400": {"description": "unknown tab", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/profiles.profileResponse"}}
                }
            }
        },
        "/pets/{petID}/vet-visits": {
            "post": {
                "description": "Dispara el trigger \"Add new vet visit\". La carga de la visita la implementa el formulario externo; este servicio responde 501.",
                "tags": ["profiles"],
                "summary": "Agregar visita veterinaria",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "404": {"description": "pet not found", "schema": {"type": "string"}},
                    "501": {"description": "not implemented", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string"},
                "age": {"type": "number"}
            }
        },
        "pets.listResponse": {
            "type": "object",
            "properties": {
                "pets": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}},
                "empty": {"type": "boolean"},
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "logs.WeightLog": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "pet_id": {"type": "string"},
                "date": {"type": "string"},
                "weight": {"type": "number"}
            }
        },
        "logs.BodyConditionLog": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "pet_id": {"type": "string"},
                "date": {"type": "string"},
                "body_condition": {"type": "string"}
            }
        },
        "logs.VetVisitLog": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "pet_id": {"type": "string"},
                "date": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "tabs.Info": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "tabs.Row": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "label": {"type": "string"},
                "date_label": {"type": "string"}
            }
        },
        "tabs.Projection": {
            "type": "object",
            "properties": {
                "tab": {"type": "string"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/tabs.Row"}},
                "vet_visits": {"type": "array", "items": {"$ref": "#/definitions/logs.VetVisitLog"}},
                "empty": {"type": "boolean"},
                "empty_message": {"type": "string"},
                "can_add_visit": {"type": "boolean"}
            }
        },
        "profiles.HealthStatus": {
            "type": "object",
            "properties": {
                "overall": {"type": "string"},
                "last_vet_visit": {"type": "string"},
                "last_vet_visit_label": {"type": "string"}
            }
        },
        "profiles.petCardResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string"},
                "age": {"type": "number"},
                "species_label": {"type": "string"},
                "age_label": {"type": "string"}
            }
        },
        "profiles.summaryResponse": {
            "type": "object",
            "properties": {
                "latest_weight_log": {"$ref": "#/definitions/logs.WeightLog"},
                "latest_body_condition_log": {"$ref": "#/definitions/logs.BodyConditionLog"},
                "weight_text": {"type": "string"},
                "body_condition_text": {"type": "string"}
            }
        },
        "profiles.profileResponse": {
            "type": "object",
            "properties": {
                "pet": {"$ref": "#/definitions/profiles.petCardResponse"},
                "weight_logs": {"type": "array", "items": {"$ref": "#/definitions/logs.WeightLog"}},
                "body_condition_logs": {"type": "array", "items": {"$ref": "#/definitions/logs.BodyConditionLog"}},
                "vet_visit_logs": {"type": "array", "items": {"$ref": "#/definitions/logs.VetVisitLog"}},
                "summary": {"$ref": "#/definitions/profiles.summaryResponse"},
                "health": {"$ref": "#/definitions/profiles.HealthStatus"},
                "tabs": {"type": "array", "items": {"$ref": "#/definitions/tabs.Info"}},
                "active_tab": {"type": "string"},
                "projection": {"$ref": "#/definitions/tabs.Projection"},
                "loading": {"type": "boolean"},
                "error": {"type": "string"}
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
	Title:            "Pet Health Log API",
	Description:      "Perfiles de mascotas con logs de peso, condición corporal y visitas al veterinario.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
