package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func getClusters(t *testing.T, dir, kind string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewClustersHandler(testConfig(dir))

	req := httptest.NewRequest("GET", "/api/v1/clusters/"+kind, nil)
	req = requestWithChiParams(req, map[string]string{"kind": kind})
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)
	return recorder
}

func TestClustersHandler_List_Time(t *testing.T) {
	dir := writeTestSets(t)

	recorder := getClusters(t, dir, "time")
	assertStatusCode(t, recorder, http.StatusOK)

	var resp ClustersResponse
	parseJSONResponse(t, recorder, &resp)

	if resp.Kind != "time" || resp.Count != 1 {
		t.Errorf("unexpected response header fields: %+v", resp)
	}
	if len(resp.Clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(resp.Clusters))
	}
	if !reflect.DeepEqual(resp.Clusters[0].Keys, []int{0, 1}) {
		t.Errorf("expected keys [0 1], got %v", resp.Clusters[0].Keys)
	}
	if !reflect.DeepEqual(resp.Clusters[0].Paths, []string{"a.jpg", "b.jpg"}) {
		t.Errorf("expected resolved paths, got %v", resp.Clusters[0].Paths)
	}
}

func TestClustersHandler_List_Location(t *testing.T) {
	dir := writeTestSets(t)

	recorder := getClusters(t, dir, "location")
	assertStatusCode(t, recorder, http.StatusOK)

	var resp ClustersResponse
	parseJSONResponse(t, recorder, &resp)

	if len(resp.Clusters) != 1 || len(resp.Clusters[0].Keys) != 3 {
		t.Errorf("expected one three-member location cluster, got %+v", resp.Clusters)
	}
}

func TestClustersHandler_List_Event(t *testing.T) {
	dir := writeTestSets(t)

	recorder := getClusters(t, dir, "event")
	assertStatusCode(t, recorder, http.StatusOK)

	var resp ClustersResponse
	parseJSONResponse(t, recorder, &resp)

	if resp.Count != 1 {
		t.Errorf("expected 1 event cluster, got %d", resp.Count)
	}
}

func TestClustersHandler_List_UnknownKind(t *testing.T) {
	dir := writeTestSets(t)

	recorder := getClusters(t, dir, "color")
	assertStatusCode(t, recorder, http.StatusBadRequest)
}

func TestClustersHandler_List_NotComputedYet(t *testing.T) {
	recorder := getClusters(t, t.TempDir(), "time")
	assertStatusCode(t, recorder, http.StatusNotFound)
}
