package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Phonebook API Documentation",
        "title": "Phonebook API",
        "version": "1.0"
    },
    "host": "localhost:3001",
    "basePath": "/api",
    "schemes": ["http"],
    "paths": {
        "/persons": {
            "get": {
                "tags": ["persons"],
                "summary": "List contacts",
                "description": "List every contact ordered by id",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/entities.Contact"}
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            },
            "post": {
                "tags": ["persons"],
                "summary": "Create a new contact",
                "description": "The id is assigned by the server and must not be supplied",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Contact data",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ports.CreateContactRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/entities.Contact"}
                    },
                    "400": {
                        "description": "Supplied id, missing name or name already present",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/persons/search": {
            "get": {
                "tags": ["persons"],
                "summary": "Find contact by name",
                "description": "Names match on first word, last word and word count, ignoring case and spacing",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "name", "type": "string", "required": true, "description": "Name"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/entities.Contact"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/persons/{id}": {
            "get": {
                "tags": ["persons"],
                "summary": "Get contact by ID",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true, "description": "Contact ID"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/entities.Contact"}
                    },
                    "400": {
                        "description": "Invalid contact ID",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            },
            "put": {
                "tags": ["persons"],
                "summary": "Update a contact",
                "description": "Empty fields keep their stored value",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true, "description": "Contact ID"},
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Fields to change",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ports.UpdateContactRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/entities.Contact"}
                    },
                    "400": {
                        "description": "Unknown or invalid contact ID",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            },
            "delete": {
                "tags": ["persons"],
                "summary": "Delete a contact",
                "description": "Deleting an unknown id also succeeds",
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true, "description": "Contact ID"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {
                        "description": "Invalid contact ID",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/admin/reload": {
            "post": {
                "tags": ["admin"],
                "summary": "Reload the phonebook file",
                "description": "Replaces the in-memory phonebook with the file content",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.ReloadResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "entities.Contact": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "description": "Unsigned 128-bit id", "example": 1},
                "name": {"type": "string", "example": "Ann Lee"},
                "number": {"type": "string", "example": "040-123456"}
            }
        },
        "ports.CreateContactRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 200, "example": "Ann Lee"},
                "number": {"type": "string", "maxLength": 100, "example": "040-123456"}
            }
        },
        "ports.UpdateContactRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 200},
                "number": {"type": "string", "maxLength": 100}
            }
        },
        "ports.PhonebookInfo": {
            "type": "object",
            "properties": {
                "entries": {"type": "integer"},
                "version": {"type": "integer"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "http.ReloadResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "integer"}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "string"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Phonebook API",
	Description:      "Phonebook API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
