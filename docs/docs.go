// Package docs expone el documento OpenAPI servido en /swagger/*.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registra una cuenta nueva y crea su perfil",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Inicia sesión y setea la cookie de sesión",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Cierra la sesión y limpia la cookie",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Devuelve el perfil de la usuaria autenticada",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Actualiza nombre y/o etapa de maternidad",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/journal": {
            "get": {
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Lista las entradas del diario de la usuaria",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Crea una entrada (texto + imagen y nota de voz opcionales)",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/journal/{entryID}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Edita una entrada propia",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["journal"],
                "summary": "Borra una entrada propia",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/memories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["memories"],
                "summary": "Lista los recuerdos de la caja de memorias",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["memories"],
                "summary": "Guarda un recuerdo (texto, imagen o nota de voz)",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/memories/{memoryID}": {
            "delete": {
                "tags": ["memories"],
                "summary": "Borra un recuerdo propio",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/children": {
            "get": {
                "produces": ["application/json"],
                "tags": ["children"],
                "summary": "Lista los perfiles de hijos de la usuaria",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["children"],
                "summary": "Crea un perfil de hijo con sus datos de nacimiento",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/children/{childID}/measurements": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["children"],
                "summary": "Registra una medición de altura y/o peso",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/vaccinations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["vaccinations"],
                "summary": "Devuelve el calendario de vacunación de la usuaria",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/vaccinations/{vaccinationID}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["vaccinations"],
                "summary": "Cambia el estado de una vacuna del calendario",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/support": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["support"],
                "summary": "Responde una consulta de apoyo emocional",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/prompts/journal": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["support"],
                "summary": "Genera una consigna de journaling personalizada",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/push-tokens": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Registra un push token de Expo para la usuaria",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/notifications": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Envía una notificación push a los dispositivos de la usuaria",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Mama's Embrace API",
	Description:      "Backend de journaling, recuerdos, crecimiento y apoyo para madres.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
