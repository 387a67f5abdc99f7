package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// GetRequestReturnStuff performs a GET against url and decodes the JSON
// body into T.
func GetRequestReturnStuff[T any](url string) (T, error) {
	var objects T

	client := &http.Client{}
	request, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return objects, err
	}

	response, responseErr := client.Do(request)
	if responseErr != nil {
		return objects, responseErr
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return objects, fmt.Errorf("GET %s: %s", url, response.Status)
	}

	if jsonErr := json.NewDecoder(response.Body).Decode(&objects); jsonErr != nil {
		return objects, jsonErr
	}

	return objects, nil
}
