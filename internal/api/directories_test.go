package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func directoryCall(t *testing.T, server *Server, method, body, auth string) (*httptest.ResponseRecorder, DirectoryResponse) {
	t.Helper()

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, "/api/v1/directories", reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp := httptest.NewRecorder()
	server.router.ServeHTTP(resp, req)

	var response struct {
		Data DirectoryResponse `json:"data"`
	}
	_ = json.Unmarshal(resp.Body.Bytes(), &response)
	return resp, response.Data
}

func TestDirectoriesRequireAuth(t *testing.T) {
	server := newTestServer(t, "/store")

	for _, method := range []string{"GET", "PUT", "POST"} {
		resp, _ := directoryCall(t, server, method, `{"directory":"/x"}`, "")
		if resp.Code != http.StatusUnauthorized {
			t.Errorf("%s without auth: Expected status 401, got %d", method, resp.Code)
		}
	}
}

func TestDirectoriesSetAndAdd(t *testing.T) {
	server := newTestServer(t, "temp")
	auth := "Bearer " + getAuthToken(t, server)

	resp, data := directoryCall(t, server, "GET", "", auth)
	if resp.Code != http.StatusOK {
		t.Fatalf("GET: Expected status 200, got %d", resp.Code)
	}
	if data.Directory != "temp" {
		t.Errorf("Expected 'temp', got %q", data.Directory)
	}

	_, data = directoryCall(t, server, "POST", `{"directory":"gif"}`, auth)
	if data.Directory != "temp,gif" {
		t.Errorf("Expected 'temp,gif', got %q", data.Directory)
	}

	_, data = directoryCall(t, server, "POST", `{"directory":"jpg, to"}`, auth)
	if !reflect.DeepEqual(data.Directories, []string{"temp", "gif", "jpg", "to"}) {
		t.Errorf("Unexpected directories: %v", data.Directories)
	}

	_, data = directoryCall(t, server, "POST", `{"directories":["zip","ti"]}`, auth)
	if data.Directory != "temp,gif,jpg,to,zip,ti" {
		t.Errorf("Unexpected directory string: %q", data.Directory)
	}

	_, data = directoryCall(t, server, "POST", `{"directory":""}`, auth)
	if data.Directory != "temp,gif,jpg,to,zip,ti" {
		t.Errorf("Adding empty directory changed list: %q", data.Directory)
	}

	_, data = directoryCall(t, server, "PUT", `{"directory":"jpg, temp"}`, auth)
	if !reflect.DeepEqual(data.Directories, []string{"jpg", "temp"}) {
		t.Errorf("PUT should replace, got %v", data.Directories)
	}
}

func TestDirectoriesAffectChecks(t *testing.T) {
	server := newTestServer(t)

	_, data := postCheck(t, server, "taken.txt")
	if data["valid"] != true {
		t.Fatalf("Expected valid before directories are configured")
	}

	resp, _ := directoryCall(t, server, "PUT", `{"directories":["/store"]}`, "ApiKey test-key")
	if resp.Code != http.StatusOK {
		t.Fatalf("PUT with api key: Expected status 200, got %d", resp.Code)
	}

	_, data = postCheck(t, server, "taken.txt")
	if data["valid"] != false {
		t.Errorf("Expected invalid after adding /store")
	}
}

func TestDirectoriesAmbiguousRequest(t *testing.T) {
	server := newTestServer(t)

	resp, _ := directoryCall(t, server, "PUT", `{"directory":"a","directories":["b"]}`, "ApiKey test-key")
	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.Code)
	}
}
