/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
	"github.com/nscaledev/wcg-reservation/pkg/registry"
	"github.com/nscaledev/wcg-reservation/pkg/server/handler"

	"k8s.io/utils/ptr"
)

const citizenID = "4444444444444"

func newRouter(t *testing.T, revision openapi.Revision) http.Handler {
	t.Helper()

	router := chi.NewRouter()
	handler.New(registry.New(), revision).Routes(router)

	return router
}

func serve(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func feedback(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body openapi.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Feedback
}

func register(t *testing.T, router http.Handler) {
	t.Helper()

	params := openapi.RegistrationParams{
		CitizenID:   citizenID,
		Name:        "Tetra",
		Surname:     "Quad",
		BirthDate:   "04/04/2001",
		PhoneNumber: ptr.To("0944444444"),
		IsRisk:      ptr.To(false),
		Address:     "home",
	}

	rec := serve(t, router, http.MethodPost, "/registration?"+params.Values().Encode())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "registration success!", feedback(t, rec))
}

func reserve(t *testing.T, router http.Handler, id, site, vaccine string) string {
	t.Helper()

	params := openapi.ReservationParams{CitizenID: id, SiteName: site, VaccineName: vaccine}

	rec := serve(t, router, http.MethodPost, "/reservation?"+params.Values().Encode())
	require.Equal(t, http.StatusOK, rec.Code)

	return feedback(t, rec)
}

func TestRegistration(t *testing.T) {
	t.Parallel()

	router := newRouter(t, openapi.Revision2)
	register(t, router)

	rec := serve(t, router, http.MethodPost, "/registration?citizen_id="+citizenID+"&name=Tetra&surname=Quad&birth_date=04/04/2001&address=home")
	assert.Equal(t, "registration failed: this person already registered", feedback(t, rec))

	rec = serve(t, router, http.MethodPost, "/registration?citizen_id=1111111111111&name=Tetra")
	assert.Equal(t, "registration failed: missing some attribute", feedback(t, rec))

	rec = serve(t, router, http.MethodPost, "/registration?citizen_id=111&name=Tetra&surname=Quad&birth_date=04/04/2001&address=home")
	assert.Equal(t, "registration failed: invalid citizen ID", feedback(t, rec))

	rec = serve(t, router, http.MethodPost, "/registration?citizen_id=1111111111111&name=Tetra&surname=Quad&birth_date=04/04/2001&address=home&is_risk=maybe")
	assert.Equal(t, "registration failed: invalid risk flag", feedback(t, rec))
}

func TestReservationFeedback(t *testing.T) {
	t.Parallel()

	for _, revision := range openapi.Revisions() {
		t.Run(string(revision), func(t *testing.T) {
			t.Parallel()

			router := newRouter(t, revision)
			register(t, router)

			assert.Equal(t, "reservation failed: invalid citizen ID", reserve(t, router, "444444444444", "OGYH Site", "Astra"))
			assert.Equal(t, "reservation failed: invalid citizen ID", reserve(t, router, "@@@@@@@@@@@@@", "OGYH Site", "Astra"))
			assert.Equal(t, "reservation failed: citizen ID is not registered", reserve(t, router, "1234567894444", "OGYH Site", "Astra"))
			assert.Equal(t, "reservation failed: missing some attribute", reserve(t, router, "", "OGYH Site", "Astra"))
			assert.Equal(t, "reservation failed: missing some attribute", reserve(t, router, citizenID, "", "Astra"))
			assert.Equal(t, "reservation failed: missing some attribute", reserve(t, router, citizenID, "OGYH Site", ""))
			assert.Equal(t, "reservation failed: invalid vaccine name", reserve(t, router, citizenID, "OGYH Site", "SINoALICE"))
			assert.Equal(t, "reservation success!", reserve(t, router, citizenID, "OGYH Site", "Astra"))
			assert.Equal(t, "reservation failed: there is already a reservation for this citizen", reserve(t, router, citizenID, "OGYH Site", "Astra"))
		})
	}
}

func TestRevision1(t *testing.T) {
	t.Parallel()

	router := newRouter(t, openapi.Revision1)
	register(t, router)

	rec := serve(t, router, http.MethodGet, "/reservation")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())

	cancel := func(id string) string {
		return feedback(t, serve(t, router, http.MethodDelete, "/reservation?citizen_id="+url.QueryEscape(id)))
	}

	assert.Equal(t, "cancel reservation failed: there is no reservation for this citizen", cancel(citizenID))
	assert.Equal(t, "cancel reservation failed: invalid citizen ID", cancel("fourinthirtee"))
	assert.Equal(t, "cancel reservation failed: citizen ID is not registered", cancel("1234567894444"))
	assert.Equal(t, "cancel reservation failed: no citizen id is given", cancel(""))

	require.Equal(t, "reservation success!", reserve(t, router, citizenID, "OGYH Site", "Astra"))
	assert.Equal(t, "cancel reservation successfully", cancel(citizenID))

	// Revision 1 lists on /reservation only.
	rec = serve(t, router, http.MethodGet, "/reservations")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRevision2(t *testing.T) {
	t.Parallel()

	router := newRouter(t, openapi.Revision2)
	register(t, router)

	require.Equal(t, "reservation success!", reserve(t, router, citizenID, "OGYH Site", "Astra"))

	rec := serve(t, router, http.MethodGet, "/reservations")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, router, http.MethodGet, "/reservation/"+citizenID)
	require.Equal(t, http.StatusOK, rec.Code)

	var reservations openapi.Reservations
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reservations))
	require.Len(t, reservations, 1)
	assert.Equal(t, citizenID, reservations[0].CitizenID.String())
	assert.Equal(t, "OGYH Site", reservations[0].SiteName)
	assert.Equal(t, "Astra", reservations[0].VaccineName)

	for _, id := range []string{"1434547494444", "@@@@@@@@@@@@@"} {
		rec = serve(t, router, http.MethodGet, "/reservation/"+url.PathEscape(id))
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}

	rec = serve(t, router, http.MethodGet, "/reservation/")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	cancel := func(id string) string {
		return feedback(t, serve(t, router, http.MethodDelete, "/reservation/"+url.PathEscape(id)))
	}

	assert.Equal(t, "cancel reservation success!", cancel(citizenID))
	assert.Equal(t, "cancel reservation failed: there is no reservation for this citizen", cancel(citizenID))
	assert.Equal(t, "cancel reservation failed: invalid citizen ID", cancel(" "))
	assert.Equal(t, "cancel reservation failed: invalid citizen ID", cancel("44444444444444"))
	assert.Equal(t, "cancel reservation failed: citizen ID is not registered", cancel("1234567894444"))

	rec = serve(t, router, http.MethodDelete, "/reservation/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
