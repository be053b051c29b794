package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Course Planner API",
        "description": "Ranks conflict-free combinations of course sections against student preferences",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Planner", "description": "Schedule planning and timetable export"},
        {"name": "Operations", "description": "Health, readiness and metrics"}
    ],
    "paths": {
        "/schedules/plan": {
            "post": {
                "tags": ["Planner"],
                "summary": "Rank conflict-free section combinations",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PlanScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "Ranked schedules; found=false when none is legal", "schema": {"$ref": "#/definitions/PlanEnvelope"}},
                    "400": {"description": "Invalid request, day token or time range", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Combination limit exceeded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/plan/export": {
            "post": {
                "tags": ["Planner"],
                "summary": "Download a ranked schedule as CSV or PDF",
                "consumes": ["application/json"],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"},
                    {"name": "rank", "in": "query", "type": "integer", "default": 0, "description": "zero-based rank, 0 is the best schedule"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PlanScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "Timetable document", "schema": {"type": "file"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No schedule at that rank", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "PlanScheduleRequest": {
            "type": "object",
            "required": ["courses"],
            "properties": {
                "courses": {"type": "array", "items": {"type": "string"}, "example": ["CS-310", "MATH-245"]},
                "aroundTime": {"type": "string", "example": "1200"},
                "maximumTimeDistance": {"type": "integer", "description": "seconds, 0 to 86340", "example": 3600},
                "badDays": {"type": "array", "items": {"type": "string"}, "example": ["Tuesday", "Thursday"]},
                "earliestTime": {"type": "string", "example": "1000"},
                "latestTime": {"type": "string", "example": "1800"},
                "preferNoWaitlist": {"type": "boolean"},
                "includeSections": {"type": "array", "items": {"type": "string"}},
                "includeProfessors": {"type": "array", "items": {"type": "string"}},
                "includeAllProfessors": {"type": "boolean"},
                "skipMissingCourses": {"type": "boolean"},
                "limit": {"type": "integer", "example": 10}
            }
        },
        "PlannedMeeting": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "meetingId": {"type": "string"},
                "type": {"type": "string"},
                "instructor": {"type": "string"},
                "location": {"type": "string"}
            }
        },
        "PlannedSection": {
            "type": "object",
            "properties": {
                "course": {"type": "string"},
                "sectionId": {"type": "string"},
                "scheduleNumber": {"type": "integer"},
                "title": {"type": "string"},
                "section": {"type": "string"},
                "units": {"type": "number"},
                "seatsAvailable": {"type": "integer"},
                "seatsTotal": {"type": "integer"},
                "waitlisted": {"type": "boolean"},
                "meetings": {"type": "array", "items": {"$ref": "#/definitions/PlannedMeeting"}},
                "footnotes": {"type": "object", "additionalProperties": {"type": "string"}},
                "summary": {"type": "string"}
            }
        },
        "PlannedSchedule": {
            "type": "object",
            "properties": {
                "rank": {"type": "integer"},
                "fitness": {"type": "integer"},
                "sections": {"type": "array", "items": {"$ref": "#/definitions/PlannedSection"}}
            }
        },
        "PlanScheduleResponse": {
            "type": "object",
            "properties": {
                "planId": {"type": "string", "format": "uuid"},
                "found": {"type": "boolean"},
                "best": {"$ref": "#/definitions/PlannedSchedule"},
                "schedules": {"type": "array", "items": {"$ref": "#/definitions/PlannedSchedule"}},
                "counts": {
                    "type": "object",
                    "properties": {
                        "combinations": {"type": "integer"},
                        "legal": {"type": "integer"},
                        "ranked": {"type": "integer"},
                        "returned": {"type": "integer"}
                    }
                },
                "missingCourses": {"type": "array", "items": {"type": "string"}},
                "generatedAt": {"type": "string", "format": "date-time"}
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
        },
        "PlanEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/PlanScheduleResponse"},
                "meta": {"type": "object", "properties": {"found": {"type": "boolean"}}}
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
