package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adboard/internal/dto"
	"adboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommentsHandler(t *testing.T) {
	th := createTestHandler()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	th.comments.On("ListForAd", mockCtx, int64(7)).Return([]models.CommentWithAuthor{
		{
			Comment:         models.Comment{ID: 1, Text: "Still available?", CreatedAt: created, AuthorID: 4, AdID: 7},
			AuthorFirstName: "Anna",
			AuthorImageID:   int64Ptr(2),
		},
	}, nil)
	th.comments.On("ListForAd", mockCtx, int64(8)).Return(nil, models.ErrAdNotFound)

	rr := th.serve(httptest.NewRequest(http.MethodGet, "/ads/7/comments", nil), owner)

	require.Equal(t, http.StatusOK, rr.Code)
	var response dto.Comments
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Equal(t, 1, response.Count)
	assert.Equal(t, created.UnixMilli(), response.Results[0].CreatedAt)
	assert.Equal(t, "/users/4/image", *response.Results[0].AuthorImage)

	rr = th.serve(httptest.NewRequest(http.MethodGet, "/ads/8/comments", nil), owner)
	assertJSONError(t, rr, http.StatusNotFound, "ad not found")
}

func TestCreateCommentHandler_IgnoresClientTimestamp(t *testing.T) {
	th := createTestHandler()
	serverTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	th.comments.On("Create", mockCtx, owner, int64(7), "Is it still available?").Return(&models.CommentWithAuthor{
		Comment:         models.Comment{ID: 3, Text: "Is it still available?", CreatedAt: serverTime, AuthorID: owner.ID, AdID: 7},
		AuthorFirstName: "Ivan",
	}, nil)

	rr := th.serve(jsonRequest(t, http.MethodPost, "/ads/7/comments", map[string]interface{}{
		"text":      "Is it still available?",
		"createdAt": 0,
	}), owner)

	require.Equal(t, http.StatusCreated, rr.Code)
	var response dto.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, serverTime.UnixMilli(), response.CreatedAt)
	th.comments.AssertExpectations(t)
}

func TestCreateCommentHandler_Validation(t *testing.T) {
	th := createTestHandler()

	rr := th.serve(jsonRequest(t, http.MethodPost, "/ads/7/comments", map[string]string{"text": "short"}), owner)

	response := assertJSONError(t, rr, http.StatusBadRequest, "validation failed")
	assert.Equal(t, "min", response.Fields["text"])
	th.comments.AssertNotCalled(t, "Create")
}

func TestUpdateCommentHandler(t *testing.T) {
	th := createTestHandler()
	stranger := &models.Principal{ID: 2, Username: "stranger@example.com", Role: models.RoleUser}

	th.comments.On("Update", mockCtx, owner, int64(7), int64(3), "Edited comment text").Return(&models.CommentWithAuthor{
		Comment: models.Comment{ID: 3, Text: "Edited comment text", AuthorID: owner.ID, AdID: 7},
	}, nil)
	th.comments.On("Update", mockCtx, stranger, int64(7), int64(3), "Edited comment text").Return(nil, models.ErrForbidden)
	th.comments.On("Update", mockCtx, owner, int64(9), int64(3), "Edited comment text").Return(nil, models.ErrCommentNotFound)

	body := map[string]string{"text": "Edited comment text"}

	rr := th.serve(jsonRequest(t, http.MethodPatch, "/ads/7/comments/3", body), owner)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = th.serve(jsonRequest(t, http.MethodPatch, "/ads/7/comments/3", body), stranger)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = th.serve(jsonRequest(t, http.MethodPatch, "/ads/9/comments/3", body), owner)
	assertJSONError(t, rr, http.StatusNotFound, "comment not found")
}

func TestDeleteCommentHandler(t *testing.T) {
	th := createTestHandler()
	th.comments.On("Delete", mockCtx, owner, int64(7), int64(3)).Return(nil)

	rr := th.serve(httptest.NewRequest(http.MethodDelete, "/ads/7/comments/3", nil), owner)

	assert.Equal(t, http.StatusOK, rr.Code)
	th.comments.AssertExpectations(t)
}
