package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// swaggerPage is the Swagger UI shell.  It loads the UI assets from the
// public CDN and points them at the spec served by OpenAPISpec, so no
// static files ship with the binary.
const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Ocean View Resort API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.10.3/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5.10.3/swagger-ui-bundle.js"></script>
    <script src="https://unpkg.com/swagger-ui-dist@5.10.3/swagger-ui-standalone-preset.js"></script>
    <script>
        window.onload = function() {
            SwaggerUIBundle({
                url: "/api-docs/openapi.json",
                dom_id: '#swagger-ui',
                presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset],
                layout: "StandaloneLayout"
            });
        };
    </script>
</body>
</html>`

// openapiSpec documents the public surface of the API.  It is embedded
// rather than read from disk so the endpoint works regardless of the
// working directory the server starts in.
const openapiSpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Ocean View Resort API",
    "description": "Reservation management for the Ocean View Resort: public booking, dashboard reads, login and staff administration.",
    "version": "1.0.0"
  },
  "paths": {
    "/api/reservations": {
      "post": {
        "summary": "Create a reservation",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/ReservationFields"}
            }
          }
        },
        "responses": {
          "201": {"description": "Reservation created, reference ID assigned"},
          "400": {"description": "Validation failed; body lists every offending field"}
        }
      },
      "get": {
        "summary": "List all reservations",
        "responses": {"200": {"description": "Array of reservations, oldest first"}}
      }
    },
    "/api/reservations/table": {
      "get": {
        "summary": "Dashboard display rows",
        "responses": {"200": {"description": "Rows with formatted reference, plan, stay range and bill"}}
      }
    },
    "/api/reservations/stats": {
      "get": {
        "summary": "Booking statistics",
        "responses": {"200": {"description": "Total bookings, total revenue and occupancy rate"}}
      }
    },
    "/api/reservations/{referenceId}": {
      "get": {
        "summary": "Invoice lookup by reference ID",
        "parameters": [
          {"name": "referenceId", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "The reservation"},
          "404": {"description": "No reservation with that reference ID"}
        }
      }
    },
    "/api/auth": {
      "post": {
        "summary": "Staff login",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "username": {"type": "string"},
                  "password": {"type": "string"}
                },
                "required": ["username", "password"]
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Login accepted; body carries username, role and access token"},
          "401": {"description": "Invalid credentials"}
        }
      }
    },
    "/api/users": {
      "get": {
        "summary": "List staff accounts (ADMIN only)",
        "responses": {
          "200": {"description": "Accounts with passwords masked"},
          "403": {"description": "Caller is not an admin"}
        }
      },
      "post": {
        "summary": "Create a staff account (ADMIN only)",
        "responses": {
          "201": {"description": "Account created"},
          "403": {"description": "Caller is not an admin"},
          "409": {"description": "Username already exists"}
        }
      },
      "delete": {
        "summary": "Delete a staff account by username (ADMIN only)",
        "parameters": [
          {"name": "username", "in": "query", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Account deleted"},
          "400": {"description": "The default admin cannot be deleted"},
          "403": {"description": "Caller is not an admin"},
          "404": {"description": "No such account"}
        }
      }
    },
    "/healthz": {
      "get": {
        "summary": "Service health check",
        "responses": {"200": {"description": "Service is up"}}
      }
    }
  },
  "components": {
    "schemas": {
      "ReservationFields": {
        "type": "object",
        "properties": {
          "guestName": {"type": "string"},
          "address": {"type": "string"},
          "phone": {"type": "string"},
          "roomType": {"type": "string", "enum": ["STANDARD", "DELUXE", "SUITE"]},
          "boardType": {"type": "string", "enum": ["BB", "HB", "FB"]},
          "checkInDate": {"type": "string", "format": "date"},
          "checkOutDate": {"type": "string", "format": "date"}
        },
        "required": ["guestName", "address", "phone", "roomType", "boardType", "checkInDate", "checkOutDate"]
      }
    }
  }
}`

// SwaggerUI serves the interactive API documentation page.
func SwaggerUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerPage)
}

// OpenAPISpec serves the OpenAPI document the Swagger UI renders.
func OpenAPISpec(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, []byte(openapiSpec))
}
