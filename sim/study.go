package sim

import "github.com/sirupsen/logrus"

// StudyPoint records the metrics of one run of a parameter study.
type StudyPoint struct {
	ParamName  string   `json:"param_name"`
	ParamValue float64  `json:"param_value"`
	Metrics    *Metrics `json:"metrics"`
}

// RunParameterStudy runs one fully isolated engine per value of the named
// parameter. Every run gets entities built fresh from the snapshot with that
// single override applied, so runs share no mutable state and the points are
// comparable.
func RunParameterStudy(cfg *Config, paramName string, values []float64) ([]StudyPoint, error) {
	points := make([]StudyPoint, 0, len(values))
	for _, value := range values {
		logrus.Infof("running simulation with %s = %v", paramName, value)
		s, err := NewSimulation(cfg, map[string]any{paramName: value})
		if err != nil {
			return nil, err
		}
		res := s.Run()
		points = append(points, StudyPoint{
			ParamName:  paramName,
			ParamValue: value,
			Metrics:    res.Metrics,
		})
	}
	return points, nil
}
