package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "FYP Portal API",
        "description": "Final year project supervision portal",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Role-scoped signup and signin"},
        {"name": "Student", "description": "Supervision requests and advisor directory"},
        {"name": "Advisor", "description": "Request responses, contract form, grading"},
        {"name": "Admin", "description": "Account directory and panel management"},
        {"name": "Panel", "description": "Evaluation marks for assigned contracts"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/{role}/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register an account under a role surface",
                "parameters": [
                    {"name": "role", "in": "path", "required": true, "type": "string", "enum": ["admin", "advisor", "student", "panel"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/{role}/signin": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate under a role surface",
                "parameters": [
                    {"name": "role", "in": "path", "required": true, "type": "string", "enum": ["admin", "advisor", "student", "panel"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SigninRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/advisors": {
            "get": {
                "tags": ["Student"],
                "summary": "List advisors",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/request/advisor": {
            "post": {
                "tags": ["Student"],
                "summary": "Create supervision request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectAdvisorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate request or capacity exceeded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/close/request/{id}": {
            "post": {
                "tags": ["Student"],
                "summary": "Withdraw a pending request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Request no longer pending", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/requests": {
            "get": {
                "tags": ["Student"],
                "summary": "List own requests by status",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["NOT_RESPONDED", "ACCEPTED", "REJECTED"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/request/{id}": {
            "get": {
                "tags": ["Student"],
                "summary": "Get one request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/advisor/accept/request/{id}": {
            "post": {
                "tags": ["Advisor"],
                "summary": "Accept a pending request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Request no longer pending", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/advisor/reject/request/{id}": {
            "post": {
                "tags": ["Advisor"],
                "summary": "Reject a pending request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Request no longer pending", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/advisor/close/request/{id}": {
            "post": {
                "tags": ["Advisor"],
                "summary": "Close an accepted agreement",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Agreement not accepted or already closed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/advisor/requests": {
            "get": {
                "tags": ["Advisor"],
                "summary": "List addressed requests by status",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["NOT_RESPONDED", "ACCEPTED", "REJECTED"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/advisor/request/{id}": {
            "get": {
                "tags": ["Advisor"],
                "summary": "Get one request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/advisor/contract/form/{id}": {
            "get": {
                "tags": ["Advisor"],
                "summary": "Read the contract form",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Advisor"],
                "summary": "Submit the contract form",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AdvisorForm"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/advisor/contract/marks/{id}": {
            "post": {
                "tags": ["Advisor"],
                "summary": "Submit advisor marks",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"marks": {"type": "integer"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Marks out of range", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Contract closed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/advisor/contract/sheet/{id}": {
            "get": {
                "tags": ["Advisor"],
                "summary": "Export the contract as a PDF sheet",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF document"}
                }
            }
        },
        "/admin/advisors": {
            "get": {
                "tags": ["Admin"],
                "summary": "List advisors",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/students": {
            "get": {
                "tags": ["Admin"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/advisor/{id}": {
            "get": {
                "tags": ["Admin"],
                "summary": "Get one advisor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/student/request/{regId}": {
            "get": {
                "tags": ["Admin"],
                "summary": "Get a student's active request by registration id",
                "parameters": [
                    {"name": "regId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No active request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/panel": {
            "post": {
                "tags": ["Admin"],
                "summary": "Create an evaluation panel",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePanelRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Member already seated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/panels": {
            "get": {
                "tags": ["Admin"],
                "summary": "List panels",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/panel/{id}": {
            "get": {
                "tags": ["Admin"],
                "summary": "Get one panel with members",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/panel/{id}/contracts": {
            "get": {
                "tags": ["Admin"],
                "summary": "List the contracts assigned to a panel",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/panel/{id}/close": {
            "post": {
                "tags": ["Admin"],
                "summary": "Close a panel and release its members",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Closed"},
                    "412": {"description": "Already closed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/panel/staff/available": {
            "get": {
                "tags": ["Admin"],
                "summary": "List staff not yet seated on a panel",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/panel/contracts": {
            "get": {
                "tags": ["Panel"],
                "summary": "List contracts assigned to the caller's panel",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/panel/contract/marks/{id}": {
            "post": {
                "tags": ["Panel"],
                "summary": "Submit mid/final evaluation marks",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PanelMarksRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Marks out of range", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Not a member of the assigned panel", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "SignupRequest": {
            "type": "object",
            "required": ["email", "password", "confirm_password", "full_name"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "confirm_password": {"type": "string"},
                "full_name": {"type": "string"},
                "department": {"type": "string"},
                "registration_id": {"type": "string"}
            }
        },
        "SigninRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "GroupMember": {
            "type": "object",
            "required": ["name", "registration_id"],
            "properties": {
                "name": {"type": "string"},
                "registration_id": {"type": "string"}
            }
        },
        "SelectAdvisorRequest": {
            "type": "object",
            "required": ["advisor_id", "project_name", "student_one", "student_two"],
            "properties": {
                "advisor_id": {"type": "string"},
                "project_name": {"type": "string"},
                "project_description": {"type": "string"},
                "student_one": {"$ref": "#/definitions/GroupMember"},
                "student_two": {"$ref": "#/definitions/GroupMember"}
            }
        },
        "AdvisorForm": {
            "type": "object",
            "required": ["designation", "department", "qualification"],
            "properties": {
                "designation": {"type": "string"},
                "department": {"type": "string"},
                "qualification": {"type": "string"},
                "compensation": {"type": "integer"},
                "tools": {"type": "string"}
            }
        },
        "PanelMarksRequest": {
            "type": "object",
            "properties": {
                "mid": {"type": "integer"},
                "final": {"type": "integer"}
            }
        },
        "CreatePanelRequest": {
            "type": "object",
            "required": ["name", "member_ids"],
            "properties": {
                "name": {"type": "string"},
                "member_ids": {"type": "array", "items": {"type": "string"}},
                "contract_ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
