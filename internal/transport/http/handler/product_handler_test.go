package handler

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestProductAddAndGetWireFormat(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/products/add", gin.H{
		"name": "Jade Bangle", "description": "grade A", "price": 120.5, "stock": 5,
	}, "")
	require.Equal(t, 201, w.Code)
	body := decode(t, w)
	require.Equal(t, "Product created successfully", body["message"])
	product := body["product"].(map[string]any)
	require.Equal(t, "Jade Bangle", product["productName"])

	w = env.do(t, "GET", fmt.Sprintf("/products/%v", product["id"]), nil, "")
	require.Equal(t, 200, w.Code)
	got := decode(t, w)
	require.Equal(t, "Jade Bangle", got["productName"])
	require.Equal(t, "grade A", got["productDescription"])
	require.EqualValues(t, 120.5, got["productPrice"])
	require.EqualValues(t, 5, got["productStock"])
	require.Equal(t, false, got["is_deleted_product"])
}

func TestProductAddMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/products/add", gin.H{"name": "Jade Bangle", "price": 120}, "")
	require.Equal(t, 400, w.Code)
	require.JSONEq(t, `{"error":"Missing name, price, or stock"}`, w.Body.String())

	w = env.do(t, "POST", "/products/add", gin.H{"name": "Jade Bangle", "price": -1, "stock": 2}, "")
	require.Equal(t, 400, w.Code)
	require.JSONEq(t, `{"error":"Price must be non-negative"}`, w.Body.String())
}

func TestProductListPagination(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 5; i++ {
		env.seedProduct(t, fmt.Sprintf("Jade %d", i), 10, 1)
	}

	w := env.do(t, "GET", "/products/all?page=3&per_page=2", nil, "")
	require.Equal(t, 200, w.Code)
	body := decode(t, w)
	require.EqualValues(t, 5, body["total"])
	require.EqualValues(t, 3, body["pages"])
	require.EqualValues(t, 3, body["current_page"])
	require.Len(t, body["products"], 1)
}

func TestProductUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Jade Bangle", 120, 5)

	w := env.do(t, "PUT", fmt.Sprintf("/products/%d", p.ID), gin.H{"price": 99.5}, "")
	require.Equal(t, 200, w.Code)
	product := decode(t, w)["product"].(map[string]any)
	require.EqualValues(t, 99.5, product["productPrice"])
	require.Equal(t, "Jade Bangle", product["productName"]) // 未提交字段不动

	w = env.do(t, "DELETE", fmt.Sprintf("/products/%d", p.ID), nil, "")
	require.Equal(t, 200, w.Code)

	w = env.do(t, "GET", fmt.Sprintf("/products/%d", p.ID), nil, "")
	require.Equal(t, 404, w.Code)
	require.JSONEq(t, `{"error":"Product not found"}`, w.Body.String())
}
