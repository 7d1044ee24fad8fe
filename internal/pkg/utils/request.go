package utils

import (
	"mediportal-service/internal/pkg/dto/requests"
	"mediportal-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
)

const (
	DefaultArticleListLimit = 20
	DefaultDoctorListLimit  = 50
)

// BuildListArticlesRequest maps the article listing query parameters onto a
// typed request. Range checks happen at validation, not here; only a
// non-numeric limit is rejected at parse time.
func BuildListArticlesRequest(r *http.Request) (*requests.ListArticles, error) {
	query := r.URL.Query()

	limit, err := parseLimit(query.Get("limit"), DefaultArticleListLimit)
	if err != nil {
		return nil, err
	}

	return &requests.ListArticles{
		Query:    query.Get("q"),
		Category: query.Get("category"),
		Tag:      query.Get("tag"),
		Limit:    limit,
	}, nil
}

func BuildListDoctorsRequest(r *http.Request) (*requests.ListDoctors, error) {
	query := r.URL.Query()

	limit, err := parseLimit(query.Get("limit"), DefaultDoctorListLimit)
	if err != nil {
		return nil, err
	}

	request := &requests.ListDoctors{
		Specialty:        query.Get("specialty"),
		State:            query.Get("state"),
		City:             query.Get("city"),
		Pathology:        query.Get("pathology"),
		ConsultationType: query.Get("consultation_type"),
		Limit:            limit,
	}

	if priceMaxStr := query.Get("price_max"); priceMaxStr != "" {
		priceMax, err := strconv.ParseFloat(priceMaxStr, 64)
		if err != nil {
			return nil, exceptions.ErrQueryParamValidation(err, "price_max")
		}
		request.PriceMax = &priceMax
	}

	return request, nil
}

func parseLimit(limitStr string, defaultLimit int) (int, error) {
	if limitStr == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0, exceptions.ErrQueryParamValidation(err, "limit")
	}
	return limit, nil
}
