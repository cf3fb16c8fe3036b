package common

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path"
	"runtime"
	"testing"

	"concord/models"
	"concord/models/dtos"

	"github.com/stretchr/testify/assert"
	yaml "gopkg.in/yaml.v2"
)

const (
	SchemeOverviewPath          string = "%s/schemes/overview"
	SchemeCellPathWithQuery     string = "%s/schemes/cell?truthState=%s&callState=%s"
	AssessmentRequestsPath      string = "%s/concordance/assessments/requests"
	ConcordanceSummaryPath      string = "%s/concordance/summary?runId=%s"
	ConcordanceOutcomesPath     string = "%s/concordance/outcomes?runId=%s"
	AssessmentsRunPath          string = "%s/concordance/assessments/run"
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	if cfg.Debug {
		http.DefaultTransport.(*http.Transport).TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

func GetSchemeOverview(_t *testing.T, _cfg *models.Config) dtos.SchemeOverviewDTO {
	request, _ := http.NewRequest("GET", fmt.Sprintf(SchemeOverviewPath, _cfg.Api.Url), nil)

	client := &http.Client{}
	response, responseErr := client.Do(request)
	assert.Nil(_t, responseErr)

	defer response.Body.Close()

	shouldBe := 200
	assert.Equal(_t, shouldBe, response.StatusCode, fmt.Sprintf("Error -- Api GET / Status: %s ; Should be %d", response.Status, shouldBe))

	//	-- interpret scheme overview from response
	overviewRespBody, overviewRespBodyErr := ioutil.ReadAll(response.Body)
	assert.Nil(_t, overviewRespBodyErr)

	//	--- transform body bytes to string
	overviewRespBodyString := string(overviewRespBody)

	//	-- convert to dto and check for error
	var overviewRespDto dtos.SchemeOverviewDTO
	overviewJsonUnmarshallingError := json.Unmarshal([]byte(overviewRespBodyString), &overviewRespDto)
	assert.Nil(_t, overviewJsonUnmarshallingError)

	assert.NotEmpty(_t, overviewRespDto.Policy)
	assert.NotEmpty(_t, overviewRespDto.TruthStates)
	assert.NotEmpty(_t, overviewRespDto.Rows)

	return overviewRespDto
}

func GetSchemeCell(truthStateName string, callStateName string, ignoreStatusCode bool, _t *testing.T, _cfg *models.Config) dtos.SchemeCellDTO {
	url := fmt.Sprintf(SchemeCellPathWithQuery, _cfg.Api.Url, truthStateName, callStateName)
	fmt.Printf("Calling %s\n", url)
	request, _ := http.NewRequest("GET", url, nil)

	client := &http.Client{}
	response, responseErr := client.Do(request)
	assert.Nil(_t, responseErr)

	defer response.Body.Close()

	if !ignoreStatusCode {
		shouldBe := 200
		assert.Equal(_t, shouldBe, response.StatusCode, fmt.Sprintf("Error -- Api GET %s Status: %s ; Should be %d", url, response.Status, shouldBe))
	}

	respBody, respBodyErr := ioutil.ReadAll(response.Body)
	assert.Nil(_t, respBodyErr)

	respBodyString := string(respBody)

	var respDto dtos.SchemeCellDTO
	jsonUnmarshallingError := json.Unmarshal([]byte(respBodyString), &respDto)
	assert.Nil(_t, jsonUnmarshallingError)

	return respDto
}
