package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/Simplici0/bakersmath/internal/dough"
	"github.com/Simplici0/bakersmath/internal/presenter"
)

type baseViewData struct {
	ErrorMessage string
}

type homeViewData struct {
	baseViewData
	Basics      []formInput
	Percentages []formInput
	Advanced    []formInput
	Recipe      *presenter.View
}

type apiError struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params, parseErr := parseRecipeForm(query)

	data := homeViewData{
		Basics:      formInputs(query, params, "basics"),
		Percentages: formInputs(query, params, "percentages"),
		Advanced:    formInputs(query, params, "advanced"),
	}

	if parseErr != nil {
		data.ErrorMessage = parseErr.Error()
		s.renderTemplate(w, http.StatusBadRequest, "home.html", data)
		return
	}

	result, err := dough.Compute(params)
	if err != nil {
		s.logger.Debug("calculation rejected", "err", err)
		data.ErrorMessage = describeError(err)
		s.renderTemplate(w, http.StatusUnprocessableEntity, "home.html", data)
		return
	}

	view := presenter.Present(params, result, presenter.Options{CurrencySymbol: s.currency})
	data.Recipe = &view
	s.renderTemplate(w, http.StatusOK, "home.html", data)
}

func (s *server) handleRecipeText(w http.ResponseWriter, r *http.Request) {
	params, err := parseRecipeForm(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := dough.Compute(params)
	if err != nil {
		s.logger.Debug("calculation rejected", "err", err)
		http.Error(w, describeError(err), http.StatusUnprocessableEntity)
		return
	}

	var buf bytes.Buffer
	view := presenter.Present(params, result, presenter.Options{CurrencySymbol: s.currency})
	if err := presenter.WriteText(&buf, view); err != nil {
		http.Error(w, "failed to render recipe", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *server) handleAPICompute(w http.ResponseWriter, r *http.Request) {
	params := dough.Defaults()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body: " + err.Error()})
		return
	}

	result, err := dough.Compute(params)
	if err != nil {
		s.logger.Debug("calculation rejected", "err", err)
		resp := apiError{Error: err.Error(), Kind: errorKind(err)}
		var perr *dough.ParameterError
		if errors.As(err, &perr) {
			resp.Field = perr.Field
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, dough.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, dough.ErrInvalidParameter):
		return "invalid_parameter"
	default:
		return ""
	}
}

func describeError(err error) string {
	var perr *dough.ParameterError
	if !errors.As(err, &perr) {
		return err.Error()
	}
	if errors.Is(err, dough.ErrDivisionByZero) {
		return "Cannot calculate: " + perr.Field + " " + perr.Reason + "."
	}
	return "Check " + perr.Field + ": it " + perr.Reason + "."
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func (s *server) renderTemplate(w http.ResponseWriter, status int, page string, data any) {
	templates, err := template.ParseFiles(
		filepath.Join(s.templateDir, "layout.html"),
		filepath.Join(s.templateDir, page),
	)
	if err != nil {
		s.logger.Error("parse template", "page", page, "err", err)
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.logger.Error("render template", "page", page, "err", err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
