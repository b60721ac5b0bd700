package router

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mitchellh/mapstructure"
)

// bindRequest fills the request object from the query string for GET and from
// the JSON body for POST. Query values are decoded weakly typed, so numeric
// fields accept their string form.
func bindRequest(r *http.Request, method string, out any) error {
	switch method {
	case http.MethodGet:
		values := map[string]any{}
		for key, vals := range r.URL.Query() {
			if len(vals) == 1 {
				values[key] = vals[0]
			} else {
				values[key] = vals
			}
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			Result:           out,
		})
		if err != nil {
			return err
		}

		return decoder.Decode(values)

	case http.MethodPost:
		defer r.Body.Close()
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return err
		}

		if len(body) == 0 {
			return nil
		}

		return json.Unmarshal(body, out)
	}

	return fmt.Errorf("unsupported method %s", method)
}
