// Package seqtest provides an in-memory Seq management API for tests.
package seqtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dc-tec/seq-operator/internal/constants"
)

const sessionCookie = "Seq-Session"

// Version is reported by GET /api.
const Version = "2024.3.12345"

var collections = []string{
	constants.APIPathAPIKeys,
	constants.APIPathAlerts,
	constants.APIPathSignals,
	constants.APIPathRetentionPolicies,
}

type user struct {
	id         string
	username   string
	password   string
	mustChange bool
	doc        map[string]any
}

type failure struct {
	method string
	prefix string
	status int
}

// Server is a fake Seq server. Entities are stored as decoded JSON documents so that
// fields unknown to the operator round-trip like they do on a real server.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	nextID   int
	users    map[string]*user
	sessions map[string]string
	entities map[string]map[string]map[string]any
	settings map[string]json.RawMessage
	calls    []string
	failures []failure
}

// New starts a fake server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := Start()
	t.Cleanup(s.Close)
	return s
}

// Start starts a fake server. The caller closes it.
func Start() *Server {
	s := &Server{
		users:    map[string]*user{},
		sessions: map[string]string{},
		entities: map[string]map[string]map[string]any{},
		settings: map[string]json.RawMessage{
			constants.SettingInstanceTitle:                 json.RawMessage(`"Seq"`),
			constants.SettingRequireAPIKeyForWritingEvents: json.RawMessage(`false`),
			constants.SettingMinimumPasswordLength:         json.RawMessage(`8`),
			constants.SettingThemeStyles:                   json.RawMessage(`""`),
			constants.SettingIsAuthenticationEnabled:       json.RawMessage(`true`),
		},
	}
	for _, c := range collections {
		s.entities[c] = map[string]map[string]any{}
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	return s
}

func (s *Server) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

// AddUser registers a local user and returns its ID. A user added with mustChange
// behaves like the first-run admin of a fresh server.
func (s *Server) AddUser(username, password string, mustChange bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID("user")
	s.users[username] = &user{
		id:         id,
		username:   username,
		password:   password,
		mustChange: mustChange,
		doc:        map[string]any{"RoleIds": []any{"role-administrator"}, "DisplayName": username},
	}
	return id
}

// Password returns the current password of username.
func (s *Server) Password(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[username]; ok {
		return u.password
	}
	return ""
}

// AddToken registers an API key token that authenticates as ownerID.
func (s *Server) AddToken(token, ownerID string) string {
	return s.Seed(constants.APIPathAPIKeys, map[string]any{
		"Title":               "token " + token,
		"OwnerId":             ownerID,
		"Token":               token,
		"AssignedPermissions": []any{"Ingest", "Read", "Write", "Project", "Organization", "System"},
		"InputSettings":       map[string]any{"AppliedProperties": []any{}},
	})
}

// Seed stores doc in collection and returns its ID. doc may be any JSON-encodable value.
func (s *Server) Seed(collection string, doc any) string {
	m := toMap(doc)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := m["Id"].(string)
	if id == "" {
		id = s.newID(idPrefix(collection))
		m["Id"] = id
	}
	s.entities[collection][id] = m
	return id
}

// Get decodes the stored document into out and reports whether it exists.
func (s *Server) Get(collection, id string, out any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.entities[collection][id]
	if !ok {
		return false
	}
	raw, _ := json.Marshal(doc)
	return json.Unmarshal(raw, out) == nil
}

// Count returns the number of documents in collection.
func (s *Server) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entities[collection])
}

// Remove deletes a document out of band.
func (s *Server) Remove(collection, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities[collection], id)
}

// Setting returns the raw value of a setting.
func (s *Server) Setting(name string) json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings[name]
}

// RevokeSessions invalidates every login session.
func (s *Server) RevokeSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = map[string]string{}
}

// Fail makes every request matching method and path prefix fail with status.
func (s *Server) Fail(method, pathPrefix string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{method: method, prefix: pathPrefix, status: status})
}

// ClearFailures removes every injected failure.
func (s *Server) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = nil
}

// Calls counts handled requests matching method and path prefix.
func (s *Server) Calls(method, pathPrefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, c := range s.calls {
		m, p, _ := strings.Cut(c, " ")
		if m == method && strings.HasPrefix(p, pathPrefix) {
			n++
		}
	}
	return n
}

// ResetCalls clears the request log.
func (s *Server) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := strings.TrimRight(r.URL.Path, "/")
	s.calls = append(s.calls, r.Method+" "+path)

	for _, f := range s.failures {
		if f.method == r.Method && strings.HasPrefix(path, f.prefix) {
			writeError(w, f.status, "injected failure")
			return
		}
	}

	switch {
	case path == constants.APIPathRoot && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"Product": "Seq", "Version": Version, "InstanceName": "seqtest"})
		return
	case path == constants.APIPathLogin && r.Method == http.MethodPost:
		s.login(w, r)
		return
	}

	caller := s.authenticate(r)
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Authentication is required.")
		return
	}

	switch {
	case path == constants.APIPathCurrentUser && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, userDoc(caller))
	case strings.HasPrefix(path, constants.APIPathUsers+"/") && r.Method == http.MethodPut:
		s.updateUser(w, r, caller, strings.TrimPrefix(path, constants.APIPathUsers+"/"))
	case strings.HasPrefix(path, constants.APIPathSettings+"/"):
		s.setting(w, r, strings.TrimPrefix(path, constants.APIPathSettings+"/"))
	default:
		s.entity(w, r, path)
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"Username"`
		Password string `json:"Password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, ok := s.users[body.Username]
	if !ok || u.password != body.Password {
		writeError(w, http.StatusUnauthorized, "The username or password is incorrect.")
		return
	}
	session := s.newID("session")
	s.sessions[session] = u.username
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: session, Path: "/"})
	writeJSON(w, http.StatusOK, userDoc(u))
}

func (s *Server) authenticate(r *http.Request) *user {
	if token := r.Header.Get(constants.HeaderAPIKey); token != "" {
		for _, doc := range s.entities[constants.APIPathAPIKeys] {
			if doc["Token"] == token {
				owner, _ := doc["OwnerId"].(string)
				for _, u := range s.users {
					if u.id == owner {
						return u
					}
				}
				return &user{id: owner, username: "apikey"}
			}
		}
		return nil
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		if username, ok := s.sessions[c.Value]; ok {
			return s.users[username]
		}
	}
	return nil
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request, caller *user, id string) {
	if caller.id != id {
		writeError(w, http.StatusForbidden, "Only the current user can be updated.")
		return
	}
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if pw, ok := doc["NewPassword"].(string); ok && pw != "" {
		caller.password = pw
	}
	if mc, ok := doc["MustChangePassword"].(bool); ok {
		caller.mustChange = mc
	}
	delete(doc, "NewPassword")
	caller.doc = doc
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setting(w http.ResponseWriter, r *http.Request, name string) {
	switch r.Method {
	case http.MethodGet:
		value, ok := s.settings[name]
		if !ok {
			writeError(w, http.StatusNotFound, "No setting named "+name)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"Id": name, "Name": name, "Value": value})
	case http.MethodPut:
		var body struct {
			Value json.RawMessage `json:"Value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if _, ok := s.settings[name]; !ok {
			writeError(w, http.StatusNotFound, "No setting named "+name)
			return
		}
		s.settings[name] = body.Value
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, r.Method)
	}
}

func (s *Server) entity(w http.ResponseWriter, r *http.Request, path string) {
	var collection, id string
	for _, c := range collections {
		if path == c {
			collection = c
			break
		}
		if strings.HasPrefix(path, c+"/") {
			collection, id = c, strings.TrimPrefix(path, c+"/")
			break
		}
	}
	if collection == "" {
		writeError(w, http.StatusNotFound, "No resource at "+path)
		return
	}
	store := s.entities[collection]

	switch {
	case id == "" && r.Method == http.MethodGet:
		out := []map[string]any{}
		ownerID := r.URL.Query().Get("ownerId")
		shared := r.URL.Query().Get("shared") == "true"
		for _, doc := range store {
			owner, _ := doc["OwnerId"].(string)
			if ownerID != "" && owner != ownerID {
				continue
			}
			if shared && owner != "" {
				continue
			}
			out = append(out, publicDoc(collection, doc))
		}
		writeJSON(w, http.StatusOK, out)
	case id == "" && r.Method == http.MethodPost:
		var doc map[string]any
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if collection != constants.APIPathRetentionPolicies {
			if title, _ := doc["Title"].(string); title == "" {
				writeError(w, http.StatusBadRequest, "A title is required.")
				return
			}
		}
		doc["Id"] = s.newID(idPrefix(collection))
		if collection == constants.APIPathAPIKeys {
			token := fmt.Sprintf("tok%08d", s.nextID)
			doc["Token"] = token
			doc["TokenPrefix"] = token[:4]
		}
		store[doc["Id"].(string)] = doc
		writeJSON(w, http.StatusCreated, doc)
	case id == "template" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, template(collection))
	case r.Method == http.MethodGet:
		doc, ok := store[id]
		if !ok {
			writeError(w, http.StatusNotFound, "The entity "+id+" does not exist.")
			return
		}
		writeJSON(w, http.StatusOK, publicDoc(collection, doc))
	case r.Method == http.MethodPut:
		existing, ok := store[id]
		if !ok {
			writeError(w, http.StatusNotFound, "The entity "+id+" does not exist.")
			return
		}
		var doc map[string]any
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		doc["Id"] = id
		if collection == constants.APIPathAPIKeys {
			doc["Token"] = existing["Token"]
			doc["TokenPrefix"] = existing["TokenPrefix"]
		}
		store[id] = doc
		w.WriteHeader(http.StatusNoContent)
	case r.Method == http.MethodDelete:
		if _, ok := store[id]; !ok {
			writeError(w, http.StatusNotFound, "The entity "+id+" does not exist.")
			return
		}
		delete(store, id)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, r.Method)
	}
}

func userDoc(u *user) map[string]any {
	doc := map[string]any{}
	for k, v := range u.doc {
		doc[k] = v
	}
	doc["Id"] = u.id
	doc["Username"] = u.username
	doc["MustChangePassword"] = u.mustChange
	return doc
}

// publicDoc hides the token of an API key after creation.
func publicDoc(collection string, doc map[string]any) map[string]any {
	if collection != constants.APIPathAPIKeys {
		return doc
	}
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k != "Token" {
			out[k] = v
		}
	}
	return out
}

func template(collection string) map[string]any {
	switch collection {
	case constants.APIPathAPIKeys:
		return map[string]any{
			"Title":               "",
			"AssignedPermissions": []any{"Ingest"},
			"InputSettings": map[string]any{
				"AppliedProperties":   []any{},
				"MinimumLevel":        "",
				"UseServerTimestamps": false,
			},
		}
	case constants.APIPathAlerts:
		return map[string]any{
			"Title":                "",
			"Select":               []any{map[string]any{"Label": "count", "Value": "count(*)"}},
			"GroupBy":              []any{},
			"TimeGrouping":         "1 minute",
			"NotificationLevel":    "Warning",
			"SuppressionTime":      "1 hour",
			"NotificationChannels": []any{},
		}
	case constants.APIPathSignals:
		return map[string]any{
			"Title":    "",
			"Filters":  []any{},
			"Columns":  []any{},
			"Grouping": "Inferred",
		}
	default:
		return map[string]any{}
	}
}

func idPrefix(collection string) string {
	switch collection {
	case constants.APIPathAPIKeys:
		return "apikey"
	case constants.APIPathAlerts:
		return "alert"
	case constants.APIPathSignals:
		return "signal"
	case constants.APIPathRetentionPolicies:
		return "retentionpolicy"
	default:
		return "entity"
	}
}

func toMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		panic(err)
	}
	return m
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"Error": msg})
}
