package indexes

// SiteOutcome is the per-site classification document indexed into
// elasticsearch, one per comparable genotype site of an assessment run.
type SiteOutcome struct {
	Id         string   `json:"id"`
	RunId      string   `json:"runId"`
	SampleId   string   `json:"sampleId"`
	Chrom      string   `json:"chrom"`
	Pos        int      `json:"pos"`
	TruthState string   `json:"truthState"`
	CallState  string   `json:"callState"`
	Outcomes   []string `json:"outcomes"`
	CreatedAt  string   `json:"createdAt"`
}

var MAPPING_FIELDS_KEYWORD_IG256 = map[string]interface{}{
	"keyword": map[string]interface{}{
		"type":         "keyword",
		"ignore_above": 256,
	},
}
var MAPPING_TEXT = map[string]interface{}{"type": "text", "fields": MAPPING_FIELDS_KEYWORD_IG256}
var MAPPING_LONG = map[string]interface{}{"type": "long"}
var MAPPING_DATE = map[string]interface{}{"type": "date"}

var SITE_OUTCOME_INDEX_MAPPING = map[string]interface{}{
	"properties": map[string]interface{}{
		"id":         MAPPING_TEXT,
		"runId":      MAPPING_TEXT,
		"sampleId":   MAPPING_TEXT,
		"chrom":      MAPPING_TEXT,
		"pos":        MAPPING_LONG,
		"truthState": MAPPING_TEXT,
		"callState":  MAPPING_TEXT,
		"outcomes":   MAPPING_TEXT,
		"createdAt":  MAPPING_DATE,
	},
}
