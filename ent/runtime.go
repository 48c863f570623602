// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/hkawai/kioku/ent/card"
	"github.com/hkawai/kioku/ent/cardstate"
	"github.com/hkawai/kioku/ent/confusion"
	"github.com/hkawai/kioku/ent/dataset"
	"github.com/hkawai/kioku/ent/review"
	"github.com/hkawai/kioku/ent/schema"
	"github.com/hkawai/kioku/ent/setting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescKey is the schema descriptor for key field.
	cardDescKey := cardFields[0].Descriptor()
	// card.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	card.KeyValidator = cardDescKey.Validators[0].(func(string) error)
	// cardDescDatasetID is the schema descriptor for dataset_id field.
	cardDescDatasetID := cardFields[1].Descriptor()
	// card.DatasetIDValidator is a validator for the "dataset_id" field. It is called by the builders before save.
	card.DatasetIDValidator = cardDescDatasetID.Validators[0].(func(string) error)
	// cardDescCardID is the schema descriptor for card_id field.
	cardDescCardID := cardFields[2].Descriptor()
	// card.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	card.CardIDValidator = cardDescCardID.Validators[0].(func(string) error)
	// cardDescQuestion is the schema descriptor for question field.
	cardDescQuestion := cardFields[3].Descriptor()
	// card.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	card.QuestionValidator = cardDescQuestion.Validators[0].(func(string) error)
	// cardDescTopic is the schema descriptor for topic field.
	cardDescTopic := cardFields[5].Descriptor()
	// card.DefaultTopic holds the default value on creation for the topic field.
	card.DefaultTopic = cardDescTopic.Default.(string)
	// cardDescExplanation is the schema descriptor for explanation field.
	cardDescExplanation := cardFields[6].Descriptor()
	// card.DefaultExplanation holds the default value on creation for the explanation field.
	card.DefaultExplanation = cardDescExplanation.Default.(string)
	cardstateFields := schema.CardState{}.Fields()
	_ = cardstateFields
	// cardstateDescKey is the schema descriptor for key field.
	cardstateDescKey := cardstateFields[0].Descriptor()
	// cardstate.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	cardstate.KeyValidator = cardstateDescKey.Validators[0].(func(string) error)
	// cardstateDescDatasetID is the schema descriptor for dataset_id field.
	cardstateDescDatasetID := cardstateFields[1].Descriptor()
	// cardstate.DatasetIDValidator is a validator for the "dataset_id" field. It is called by the builders before save.
	cardstate.DatasetIDValidator = cardstateDescDatasetID.Validators[0].(func(string) error)
	// cardstateDescCardID is the schema descriptor for card_id field.
	cardstateDescCardID := cardstateFields[2].Descriptor()
	// cardstate.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	cardstate.CardIDValidator = cardstateDescCardID.Validators[0].(func(string) error)
	// cardstateDescReps is the schema descriptor for reps field.
	cardstateDescReps := cardstateFields[7].Descriptor()
	// cardstate.DefaultReps holds the default value on creation for the reps field.
	cardstate.DefaultReps = cardstateDescReps.Default.(int)
	// cardstate.RepsValidator is a validator for the "reps" field. It is called by the builders before save.
	cardstate.RepsValidator = cardstateDescReps.Validators[0].(func(int) error)
	// cardstateDescLapses is the schema descriptor for lapses field.
	cardstateDescLapses := cardstateFields[8].Descriptor()
	// cardstate.DefaultLapses holds the default value on creation for the lapses field.
	cardstate.DefaultLapses = cardstateDescLapses.Default.(int)
	// cardstate.LapsesValidator is a validator for the "lapses" field. It is called by the builders before save.
	cardstate.LapsesValidator = cardstateDescLapses.Validators[0].(func(int) error)
	confusionFields := schema.Confusion{}.Fields()
	_ = confusionFields
	// confusionDescKey is the schema descriptor for key field.
	confusionDescKey := confusionFields[0].Descriptor()
	// confusion.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	confusion.KeyValidator = confusionDescKey.Validators[0].(func(string) error)
	// confusionDescDatasetID is the schema descriptor for dataset_id field.
	confusionDescDatasetID := confusionFields[1].Descriptor()
	// confusion.DatasetIDValidator is a validator for the "dataset_id" field. It is called by the builders before save.
	confusion.DatasetIDValidator = confusionDescDatasetID.Validators[0].(func(string) error)
	// confusionDescPairKey is the schema descriptor for pair_key field.
	confusionDescPairKey := confusionFields[2].Descriptor()
	// confusion.PairKeyValidator is a validator for the "pair_key" field. It is called by the builders before save.
	confusion.PairKeyValidator = confusionDescPairKey.Validators[0].(func(string) error)
	// confusionDescCardA is the schema descriptor for card_a field.
	confusionDescCardA := confusionFields[3].Descriptor()
	// confusion.CardAValidator is a validator for the "card_a" field. It is called by the builders before save.
	confusion.CardAValidator = confusionDescCardA.Validators[0].(func(string) error)
	// confusionDescCardB is the schema descriptor for card_b field.
	confusionDescCardB := confusionFields[4].Descriptor()
	// confusion.CardBValidator is a validator for the "card_b" field. It is called by the builders before save.
	confusion.CardBValidator = confusionDescCardB.Validators[0].(func(string) error)
	// confusionDescCount is the schema descriptor for count field.
	confusionDescCount := confusionFields[5].Descriptor()
	// confusion.DefaultCount holds the default value on creation for the count field.
	confusion.DefaultCount = confusionDescCount.Default.(int)
	// confusion.CountValidator is a validator for the "count" field. It is called by the builders before save.
	confusion.CountValidator = confusionDescCount.Validators[0].(func(int) error)
	datasetFields := schema.Dataset{}.Fields()
	_ = datasetFields
	// datasetDescDatasetID is the schema descriptor for dataset_id field.
	datasetDescDatasetID := datasetFields[0].Descriptor()
	// dataset.DatasetIDValidator is a validator for the "dataset_id" field. It is called by the builders before save.
	dataset.DatasetIDValidator = datasetDescDatasetID.Validators[0].(func(string) error)
	// datasetDescTitle is the schema descriptor for title field.
	datasetDescTitle := datasetFields[1].Descriptor()
	// dataset.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	dataset.TitleValidator = datasetDescTitle.Validators[0].(func(string) error)
	// datasetDescDescription is the schema descriptor for description field.
	datasetDescDescription := datasetFields[2].Descriptor()
	// dataset.DefaultDescription holds the default value on creation for the description field.
	dataset.DefaultDescription = datasetDescDescription.Default.(string)
	// datasetDescCardCount is the schema descriptor for card_count field.
	datasetDescCardCount := datasetFields[4].Descriptor()
	// dataset.DefaultCardCount holds the default value on creation for the card_count field.
	dataset.DefaultCardCount = datasetDescCardCount.Default.(int)
	// dataset.CardCountValidator is a validator for the "card_count" field. It is called by the builders before save.
	dataset.CardCountValidator = datasetDescCardCount.Validators[0].(func(int) error)
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescDatasetID is the schema descriptor for dataset_id field.
	reviewDescDatasetID := reviewFields[0].Descriptor()
	// review.DatasetIDValidator is a validator for the "dataset_id" field. It is called by the builders before save.
	review.DatasetIDValidator = reviewDescDatasetID.Validators[0].(func(string) error)
	// reviewDescCardID is the schema descriptor for card_id field.
	reviewDescCardID := reviewFields[1].Descriptor()
	// review.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	review.CardIDValidator = reviewDescCardID.Validators[0].(func(string) error)
	// reviewDescGrade is the schema descriptor for grade field.
	reviewDescGrade := reviewFields[2].Descriptor()
	// review.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	review.GradeValidator = reviewDescGrade.Validators[0].(func(int) error)
	// reviewDescResponseMs is the schema descriptor for response_ms field.
	reviewDescResponseMs := reviewFields[3].Descriptor()
	// review.ResponseMsValidator is a validator for the "response_ms" field. It is called by the builders before save.
	review.ResponseMsValidator = reviewDescResponseMs.Validators[0].(func(int64) error)
	// reviewDescSessionID is the schema descriptor for session_id field.
	reviewDescSessionID := reviewFields[5].Descriptor()
	// review.DefaultSessionID holds the default value on creation for the session_id field.
	review.DefaultSessionID = reviewDescSessionID.Default.(string)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
}
