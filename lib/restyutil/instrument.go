package restyutil

import (
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// DumpExchanges writes every request the client makes, together with its response or
// error, to output. A nil output leaves the client untouched.
func DumpExchanges(client *resty.Client, output Output) {
	if output == nil {
		return
	}
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		writeDump(output, res.Request.URL, func() string { return formatHttpMessage(res) })
		return nil
	})
	client.OnError(func(req *resty.Request, reqErr error) {
		writeDump(output, req.URL, func() string { return formatHttpError(req, reqErr) })
	})
}

// writeDump never lets a failed dump reach the request that produced it.
func writeDump(output Output, url string, format func() string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("failed to format http exchange", "url", url, "panic", r)
		}
	}()
	err := output.Write(format())
	if err != nil {
		slog.Warn("failed to dump http exchange", "url", url, "err", err)
	}
}
