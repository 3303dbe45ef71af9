package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/exercises": {
            "get": {
                "summary": "Exercise catalog",
                "tags": [
                    "exercises"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/sessions": {
            "post": {
                "summary": "Start a session at home",
                "tags": [
                    "sessions"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    }
                }
            },
            "delete": {
                "summary": "End the current session",
                "tags": [
                    "sessions"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    }
                }
            }
        },
        "/navigation": {
            "get": {
                "summary": "Current route and location",
                "tags": [
                    "navigation"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    }
                }
            }
        },
        "/navigation/location": {
            "put": {
                "summary": "Report a host location change",
                "tags": [
                    "navigation"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "location": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    }
                }
            }
        },
        "/navigation/navigate": {
            "post": {
                "summary": "Navigate to an exercise",
                "tags": [
                    "navigation"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "route": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    }
                }
            }
        },
        "/navigation/back": {
            "post": {
                "summary": "Return home",
                "tags": [
                    "navigation"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    }
                }
            }
        },
        "/pages/student-card": {
            "get": {
                "summary": "Student card view",
                "tags": [
                    "student-card"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    }
                }
            }
        },
        "/pages/status": {
            "get": {
                "summary": "Status badge view",
                "tags": [
                    "status"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    }
                }
            },
            "put": {
                "summary": "Update status or label",
                "tags": [
                    "status"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "status": {
                                    "type": "string"
                                },
                                "label": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/accordion": {
            "get": {
                "summary": "Accordion view",
                "tags": [
                    "accordion"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    }
                }
            }
        },
        "/pages/accordion/items/{index}/toggle": {
            "post": {
                "summary": "Open or close one item",
                "tags": [
                    "accordion"
                ],
                "parameters": [
                    {
                        "name": "index",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/directory": {
            "get": {
                "summary": "Filtered student directory",
                "tags": [
                    "directory"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    }
                }
            }
        },
        "/pages/directory/query": {
            "put": {
                "summary": "Set the filter query",
                "tags": [
                    "directory"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "query": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/tabs": {
            "get": {
                "summary": "Tabs view",
                "tags": [
                    "tabs"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    }
                }
            }
        },
        "/pages/tabs/active": {
            "put": {
                "summary": "Select a tab",
                "tags": [
                    "tabs"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "index": {
                                    "type": "integer"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/classroom": {
            "get": {
                "summary": "Classroom view",
                "tags": [
                    "classroom"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    }
                }
            }
        },
        "/pages/classroom/sort": {
            "put": {
                "summary": "Set the sort mode",
                "tags": [
                    "classroom"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "mode": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/classroom/students": {
            "post": {
                "summary": "Add a student",
                "tags": [
                    "classroom"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "name": {
                                    "type": "string"
                                },
                                "grade": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/classroom/students/{id}/scores": {
            "post": {
                "summary": "Grade a student",
                "tags": [
                    "classroom"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "score": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/classroom/students/{id}": {
            "delete": {
                "summary": "Remove a student",
                "tags": [
                    "classroom"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/quiz": {
            "get": {
                "summary": "Quiz builder view",
                "tags": [
                    "quiz"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    }
                }
            }
        },
        "/pages/quiz/mode": {
            "post": {
                "summary": "Toggle edit and preview",
                "tags": [
                    "quiz"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/quiz/title": {
            "put": {
                "summary": "Set the quiz title",
                "tags": [
                    "quiz"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/quiz/questions": {
            "post": {
                "summary": "Add a question",
                "tags": [
                    "quiz"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/quiz/questions/{id}": {
            "put": {
                "summary": "Update question text",
                "tags": [
                    "quiz"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "text": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            },
            "delete": {
                "summary": "Delete a question",
                "tags": [
                    "quiz"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/quiz/questions/{id}/move": {
            "post": {
                "summary": "Move a question up or down",
                "tags": [
                    "quiz"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "direction": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/quiz/questions/{id}/options": {
            "post": {
                "summary": "Add an option",
                "tags": [
                    "quiz"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/quiz/questions/{id}/options/{index}": {
            "put": {
                "summary": "Update option text",
                "tags": [
                    "quiz"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "index",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "text": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            },
            "delete": {
                "summary": "Remove an option",
                "tags": [
                    "quiz"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "index",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/quiz/questions/{id}/options/{index}/correct": {
            "post": {
                "summary": "Toggle a correct answer",
                "tags": [
                    "quiz"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "index",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/pages/quiz/questions/{id}/options/{index}/select": {
            "post": {
                "summary": "Toggle a preview selection",
                "tags": [
                    "quiz"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "index",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Missing or invalid session"
                    },
                    "409": {
                        "description": "Page not active"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo is served by the router at /swagger/doc.json.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "exercise-server",
	Description:      "Per-session navigation and state for the seven exercise pages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
