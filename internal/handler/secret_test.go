package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"wvt/internal/model"
)

func TestSecretEncryptDecryptRoundtrip(t *testing.T) {
	initTestConfig(t)
	h := NewSecretHandler()

	encRec := postJSON(t, h.Encrypt, model.SecretRequest{Secret: "hunter2", Password: "pw"})
	require.Equal(t, http.StatusOK, encRec.Code)
	export := decodeBody[model.ExportResponse](t, encRec).Export
	require.NotEmpty(t, export)

	decRec := postJSON(t, h.Decrypt, model.ImportRequest{Export: export, Password: "pw"})
	require.Equal(t, http.StatusOK, decRec.Code)
	require.Equal(t, "hunter2", decodeBody[model.SecretResponse](t, decRec).Secret)
}

func TestSecretDecryptWrongPassword(t *testing.T) {
	initTestConfig(t)
	h := NewSecretHandler()

	encRec := postJSON(t, h.Encrypt, model.SecretRequest{Secret: "hunter2", Password: "right"})
	export := decodeBody[model.ExportResponse](t, encRec).Export

	decRec := postJSON(t, h.Decrypt, model.ImportRequest{Export: export, Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, decRec.Code)
	require.Equal(t, "decryption_failed", decodeBody[model.ErrorResponse](t, decRec).Code)
}

func TestSecretEncryptRequiresFields(t *testing.T) {
	initTestConfig(t)
	h := NewSecretHandler()

	rec := postJSON(t, h.Encrypt, model.SecretRequest{Secret: "hunter2"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.Encrypt, model.SecretRequest{Password: "pw"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
