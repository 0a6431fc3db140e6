package motionmodel

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/temoto/robotstxt"
)

var ErrDisallowedByRobots = errors.New("disallowed by robots.txt")

// getRobotsData fetches robots.txt once per host, concurrent callers for
// the same host share a single request
func (r *Reader) getRobotsData(ctx context.Context, u *url.URL) (data *robotstxt.RobotsData, err error) {
	baseURL := u.Scheme + "://" + u.Host
	if data, ok := r.cachedRobotsData(baseURL); ok {
		return data, nil
	}
	v, errFetch, _ := r.robotsGroup.Do(baseURL, func() (interface{}, error) {
		if data, ok := r.cachedRobotsData(baseURL); ok {
			return data, nil
		}
		data, errFetch := r.fetchRobotsData(ctx, baseURL)
		if errFetch != nil {
			return nil, errFetch
		}
		r.robotsLock.Lock()
		r.robots[baseURL] = data
		r.robotsLock.Unlock()
		return data, nil
	})
	if errFetch != nil {
		return nil, errFetch
	}
	return v.(*robotstxt.RobotsData), nil
}

func (r *Reader) cachedRobotsData(baseURL string) (data *robotstxt.RobotsData, ok bool) {
	r.robotsLock.Lock()
	defer r.robotsLock.Unlock()
	data, ok = r.robots[baseURL]
	return data, ok
}

func (r *Reader) fetchRobotsData(ctx context.Context, baseURL string) (data *robotstxt.RobotsData, err error) {
	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/robots.txt", nil)
	if errRequest != nil {
		return nil, errRequest
	}
	req.Header.Set("User-Agent", r.conf.Agent)
	resp, errGet := r.client.Do(req)
	if errGet != nil {
		return nil, errGet
	}
	defer resp.Body.Close()
	return robotstxt.FromResponse(resp)
}

func (r *Reader) allowedByRobots(ctx context.Context, u *url.URL) error {
	if r.conf.IgnoreRobots {
		return nil
	}
	data, errRobots := r.getRobotsData(ctx, u)
	if errRobots != nil {
		return errRobots
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if !data.TestAgent(path, r.conf.Agent) {
		return ErrDisallowedByRobots
	}
	return nil
}
