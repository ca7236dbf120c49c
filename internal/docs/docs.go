// Package docs registers the Swagger document served under /swagger.
// Keep it in step with the @Router annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/airports": {
            "get": {
                "produces": ["application/json"],
                "tags": ["airports"],
                "summary": "List airports",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AirportListResponse"}}}
            }
        },
        "/airports/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["airports"],
                "summary": "Get an airport",
                "parameters": [
                    {"type": "string", "description": "IATA code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AirportResponse"}},
                    "404": {"description": "Airport not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Log in with a known email. The password is not checked.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [
                    {"description": "User login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "User authenticated and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Register a traveller account and log it in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "User registered and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/bookings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List bookings",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.PageResponse-models_Booking"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Books the flight at the price last shown to the traveller and debits the wallet",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Book a flight",
                "parameters": [
                    {"description": "Booking details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateBookingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.BookingResponse"}},
                    "400": {"description": "Invalid input or insufficient balance", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Flight not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/bookings/{id}/boarding-pass": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "tags": ["bookings"],
                "summary": "Download boarding pass",
                "parameters": [
                    {"type": "string", "description": "Booking ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "409": {"description": "Booking cancelled", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/bookings/{id}/cancel": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Cancel a booking",
                "parameters": [
                    {"type": "string", "description": "Booking ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CancelBookingResponse"}},
                    "409": {"description": "Booking already cancelled", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/flights": {
            "get": {
                "description": "Returns the catalog for a route and date. Repeated searches count as views and may change prices.",
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Search flights",
                "parameters": [
                    {"type": "string", "description": "Departure IATA code", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Arrival IATA code", "name": "to", "in": "query", "required": true},
                    {"type": "string", "description": "Departure date (YYYY-MM-DD)", "name": "date", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.SearchResult"}},
                    "404": {"description": "Airport not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/flights/{from}/{to}/{date}/{id}": {
            "get": {
                "description": "Evaluates the flight's demand price and returns it with a notice when the price surged.",
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "View a flight",
                "parameters": [
                    {"type": "string", "description": "Departure IATA code", "name": "from", "in": "path", "required": true},
                    {"type": "string", "description": "Arrival IATA code", "name": "to", "in": "path", "required": true},
                    {"type": "string", "description": "Departure date (YYYY-MM-DD)", "name": "date", "in": "path", "required": true},
                    {"type": "string", "description": "Flight ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.FlightView"}},
                    "404": {"description": "Flight not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/wallet": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Get wallet",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.WalletResponse"}}}
            }
        }
    },
    "definitions": {
        "handlers.AirportListResponse": {
            "type": "object",
            "properties": {
                "airports": {"type": "array", "items": {"$ref": "#/definitions/models.Airport"}}
            }
        },
        "handlers.AirportResponse": {
            "type": "object",
            "properties": {
                "airport": {"$ref": "#/definitions/models.Airport"}
            }
        },
        "handlers.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/models.User"}
            }
        },
        "handlers.BookingResponse": {
            "type": "object",
            "properties": {
                "booking": {"$ref": "#/definitions/models.Booking"}
            }
        },
        "handlers.CancelBookingResponse": {
            "type": "object",
            "properties": {
                "booking": {"$ref": "#/definitions/models.Booking"},
                "refund": {"type": "integer"}
            }
        },
        "handlers.CreateBookingRequest": {
            "type": "object",
            "required": ["date", "flightId", "from", "passengerEmail", "passengerName", "to"],
            "properties": {
                "date": {"type": "string"},
                "flightId": {"type": "string"},
                "from": {"type": "string"},
                "passengerEmail": {"type": "string"},
                "passengerName": {"type": "string", "maxLength": 100},
                "to": {"type": "string"}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string", "maxLength": 255},
                "name": {"type": "string", "maxLength": 100},
                "password": {"type": "string", "maxLength": 128}
            }
        },
        "handlers.WalletResponse": {
            "type": "object",
            "properties": {
                "wallet": {"$ref": "#/definitions/models.Wallet"}
            }
        },
        "models.Airline": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "logo": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "models.Airport": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "code": {"type": "string"},
                "country": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "models.Booking": {
            "type": "object",
            "properties": {
                "bookingDate": {"type": "string"},
                "flight": {"$ref": "#/definitions/models.Flight"},
                "flightId": {"type": "string"},
                "id": {"type": "string"},
                "passengerEmail": {"type": "string"},
                "passengerName": {"type": "string"},
                "pnr": {"type": "string"},
                "seatNumber": {"type": "string"},
                "status": {"type": "string", "enum": ["confirmed", "cancelled"]}
            }
        },
        "models.Flight": {
            "type": "object",
            "properties": {
                "airline": {"$ref": "#/definitions/models.Airline"},
                "arrivalAirport": {"type": "string"},
                "arrivalCity": {"type": "string"},
                "arrivalDate": {"type": "string"},
                "arrivalTime": {"type": "string"},
                "basePrice": {"type": "integer"},
                "currentPrice": {"type": "integer"},
                "departureAirport": {"type": "string"},
                "departureCity": {"type": "string"},
                "departureDate": {"type": "string"},
                "departureTime": {"type": "string"},
                "duration": {"type": "string"},
                "id": {"type": "string"},
                "lastViewed": {"type": "integer", "description": "epoch milliseconds"},
                "stops": {"type": "integer"},
                "viewCount": {"type": "integer"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "admin"]}
            }
        },
        "models.Wallet": {
            "type": "object",
            "properties": {
                "balance": {"type": "integer"},
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/models.WalletTransaction"}}
            }
        },
        "models.WalletTransaction": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string", "enum": ["debit", "credit"]}
            }
        },
        "pagination.PageResponse-models_Booking": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Booking"}},
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalItems": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "services.FlightView": {
            "type": "object",
            "properties": {
                "flight": {"$ref": "#/definitions/models.Flight"},
                "notice": {"type": "string"},
                "priceSurged": {"type": "boolean"}
            }
        },
        "services.SearchResult": {
            "type": "object",
            "properties": {
                "flights": {"type": "array", "items": {"$ref": "#/definitions/models.Flight"}},
                "generated": {"type": "boolean"},
                "surgedFlightIds": {"type": "array", "items": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "SkyVoyager API",
	Description:      "SkyVoyager is a flight booking demo with demand-based pricing, a mock wallet and an admin console.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
