package swagger

// OpenAPI is the spec served at /openapi.yaml.
var OpenAPI = []byte(`openapi: 3.0.3
info:
  title: Hackathon Judging Dashboard API
  version: "1.0"
  description: >
    Judges authenticate via the session cookie, read their own scores, and
    upsert one entry per (team, judge) pair. The ranking view is gated by
    the admin key.
paths:
  /session:
    post:
      summary: Exchange a judge identity for a session cookie
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              required: [email]
              properties:
                email: {type: string, format: email}
                name: {type: string}
      responses:
        "200": {description: Session issued; judge_session cookie set}
        "400": {description: Missing or invalid email}
  /teams:
    get:
      summary: List the imported team roster
      responses:
        "200":
          description: Roster rows
          content:
            application/json:
              schema:
                type: array
                items: {$ref: "#/components/schemas/Team"}
  /scores:
    get:
      summary: Read the score book
      description: >
        Judge-scoped by default; presenting the admin key via X-Admin-Key
        or ?key= widens the read to every judge's entries.
      responses:
        "200":
          description: Map of team id to merged record
          content:
            application/json:
              schema:
                type: object
                additionalProperties: {$ref: "#/components/schemas/TeamScoreRecord"}
        "401": {description: No valid session or admin key}
    post:
      summary: Upsert one judge's entry for one team
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              properties:
                teamId: {type: string}
                teamName: {type: string}
                scores: {$ref: "#/components/schemas/ScoreEntry"}
      responses:
        "200": {description: Post-write judge-scoped book}
        "400": {description: Missing team identifier or scores payload}
        "401": {description: No valid session}
        "500": {description: Storage failure; nothing was written}
  /ranking:
    get:
      summary: Admin standings, total descending
      parameters:
        - {name: key, in: query, schema: {type: string}}
        - {name: limit, in: query, schema: {type: integer, minimum: 1}}
      responses:
        "200":
          description: Ordered standings
          content:
            application/json:
              schema:
                type: array
                items: {$ref: "#/components/schemas/Standing"}
        "401": {description: Invalid admin key}
  /stats:
    get:
      summary: Service statistics
      responses:
        "200": {description: Stats JSON}
  /healthz:
    get:
      summary: Prometheus metrics / liveness
      responses:
        "200": {description: Metrics exposition}
components:
  schemas:
    ScoreEntry:
      type: object
      properties:
        problemRelevance: {type: integer, minimum: 0, maximum: 15}
        technicalFeasibility: {type: integer, minimum: 0, maximum: 15}
        statementAlignment: {type: integer, minimum: 0, maximum: 15}
        creativity: {type: integer, minimum: 0, maximum: 15}
        presentation: {type: integer, minimum: 0, maximum: 15}
        platformUse: {type: integer, minimum: 0, maximum: 15}
        notes: {type: string}
        updatedAt: {type: string, format: date-time}
        updatedBy: {type: string}
        updatedByName: {type: string}
    TeamScoreRecord:
      allOf:
        - {$ref: "#/components/schemas/ScoreEntry"}
        - type: object
          properties:
            judges:
              type: array
              items: {$ref: "#/components/schemas/ScoreEntry"}
    Team:
      type: object
      properties:
        id: {type: string}
        name: {type: string}
        members:
          type: array
          items: {type: string}
        track: {type: string}
    Standing:
      type: object
      properties:
        teamId: {type: string}
        teamName: {type: string}
        total: {type: integer}
        judgeCount: {type: integer}
`)
