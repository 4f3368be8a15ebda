package catalog

import (
	"github.com/MostafaKhidr/QCHAT/models"
)

// Option label sets shared by several questions.
var (
	frequencyOptions = []models.QuestionOption{
		{Value: models.OptionA, LabelEN: "Many times a day", LabelAR: "عدة مرات في اليوم"},
		{Value: models.OptionB, LabelEN: "A few times a day", LabelAR: "بضع مرات في اليوم"},
		{Value: models.OptionC, LabelEN: "A few times a week", LabelAR: "بضع مرات في الأسبوع"},
		{Value: models.OptionD, LabelEN: "Less than once a week", LabelAR: "أقل من مرة في الأسبوع"},
		{Value: models.OptionE, LabelEN: "Never", LabelAR: "أبداً"},
	}
	alwaysNeverOptions = []models.QuestionOption{
		{Value: models.OptionA, LabelEN: "Always", LabelAR: "دائماً"},
		{Value: models.OptionB, LabelEN: "Usually", LabelAR: "عادة"},
		{Value: models.OptionC, LabelEN: "Sometimes", LabelAR: "أحياناً"},
		{Value: models.OptionD, LabelEN: "Rarely", LabelAR: "نادراً"},
		{Value: models.OptionE, LabelEN: "Never", LabelAR: "أبداً"},
	}
)

// Concern-point sets. Question 10 is the reverse-scored item of the
// instrument: the concerning answers sit at the low end of the scale.
var (
	standardScoring = []models.AnswerOption{models.OptionC, models.OptionD, models.OptionE}
	reversedScoring = []models.AnswerOption{models.OptionA, models.OptionB, models.OptionC}
)

// defaultQuestions returns the complete Q-CHAT-10 question set. The set is
// hardcoded so the instrument can be revised without data migrations.
func defaultQuestions() []models.QuestionDefinition {
	return []models.QuestionDefinition{
		{
			QuestionNumber: 1,
			TextEN:         "Does your child look at you when you call his/her name?",
			TextAR:         "هل ينظر طفلك إليك عندما تنادي باسمه؟",
			Options:        alwaysNeverOptions,
			ScoringOptions: standardScoring,
			VideoPositive:  "/videos/Q1/positive.mp4",
			VideoNegative:  "/videos/Q1/negative.mp4",
		},
		{
			QuestionNumber: 2,
			TextEN:         "How easy is it for you to get eye contact with your child?",
			TextAR:         "ما مدى سهولة التواصل البصري مع طفلك؟",
			Options: []models.QuestionOption{
				{Value: models.OptionA, LabelEN: "Very easy", LabelAR: "سهل جداً"},
				{Value: models.OptionB, LabelEN: "Quite easy", LabelAR: "سهل نوعاً ما"},
				{Value: models.OptionC, LabelEN: "Quite difficult", LabelAR: "صعب نوعاً ما"},
				{Value: models.OptionD, LabelEN: "Very difficult", LabelAR: "صعب جداً"},
				{Value: models.OptionE, LabelEN: "Impossible", LabelAR: "مستحيل"},
			},
			ScoringOptions: standardScoring,
			VideoPositive:  "/videos/Q2/positive.mp4",
			VideoNegative:  "/videos/Q2/negative.mp4",
		},
		{
			QuestionNumber: 3,
			TextEN:         "Does your child point to indicate that s/he wants something? (e.g. a toy that is out of reach)",
			TextAR:         "هل يشير طفلك للإشارة إلى أنه يريد شيئاً؟ (مثل لعبة بعيدة عن متناول اليد)",
			Options:        frequencyOptions,
			ScoringOptions: standardScoring,
			VideoPositive:  "/videos/Q3/positive.mp4",
			VideoNegative:  "/videos/Q3/negative.mp4",
		},
		{
			QuestionNumber: 4,
			TextEN:         "Does your child point to share interest with you? (e.g. pointing at an interesting sight)",
			TextAR:         "هل يشير طفلك لمشاركة الاهتمام معك؟ (مثل الإشارة إلى شيء مثير للاهتمام)",
			Options:        frequencyOptions,
			ScoringOptions: standardScoring,
			VideoPositive:  "/videos/Q4/positive.mp4",
			VideoNegative:  "/videos/Q4/negative.mp4",
		},
		{
			QuestionNumber: 5,
			TextEN:         "Does your child pretend? (e.g. care for dolls, talk on a toy phone)",
			TextAR:         "هل يتظاهر طفلك؟ (مثل الاعتناء بالدمى، التحدث على هاتف لعبة)",
			Options:        frequencyOptions,
			ScoringOptions: standardScoring,
			VideoPositive:  "/videos/Q5/positive.mp4",
			VideoNegative:  "/videos/Q5/negative.mp4",
		},
		{
			QuestionNumber: 6,
			TextEN:         "Does your child follow where you're looking?",
			TextAR:         "هل يتبع طفلك نظرك؟",
			Options:        frequencyOptions,
			ScoringOptions: standardScoring,
			VideoPositive:  "/videos/Q6/positive.mp4",
			VideoNegative:  "/videos/Q6/negative.mp4",
		},
		{
			QuestionNumber: 7,
			TextEN:         "If you or someone else in the family is visibly upset, does your child show signs of wanting to comfort them? (e.g. stroking hair, hugging them)",
			TextAR:         "إذا كنت أنت أو أي شخص آخر في العائلة منزعجاً بشكل واضح، هل يظهر طفلك علامات الرغبة في مواساته؟",
			Options:        alwaysNeverOptions,
			ScoringOptions: standardScoring,
			VideoPositive:  "/videos/Q7/positive.mp4",
			VideoNegative:  "/videos/Q7/negative.mp4",
		},
		{
			QuestionNumber: 8,
			TextEN:         "Would you describe your child's first words as:",
			TextAR:         "كيف تصف كلمات طفلك الأولى:",
			Options: []models.QuestionOption{
				{Value: models.OptionA, LabelEN: "Very typical", LabelAR: "نموذجية جداً"},
				{Value: models.OptionB, LabelEN: "Quite typical", LabelAR: "نموذجية نوعاً ما"},
				{Value: models.OptionC, LabelEN: "Slightly unusual", LabelAR: "غير عادية قليلاً"},
				{Value: models.OptionD, LabelEN: "Very unusual", LabelAR: "غير عادية جداً"},
				{Value: models.OptionE, LabelEN: "My child doesn't speak", LabelAR: "طفلي لا يتكلم"},
			},
			ScoringOptions: standardScoring,
			VideoPositive:  "/videos/Q8/positive.mp4",
			VideoNegative:  "/videos/Q8/negative.mp4",
		},
		{
			QuestionNumber: 9,
			TextEN:         "Does your child use simple gestures? (e.g. wave goodbye)",
			TextAR:         "هل يستخدم طفلك إيماءات بسيطة؟ (مثل التلويح بالوداع)",
			Options:        frequencyOptions,
			ScoringOptions: standardScoring,
			VideoPositive:  "/videos/Q9/positive.mp4",
			VideoNegative:  "/videos/Q9/negative.mp4",
		},
		{
			QuestionNumber: 10,
			TextEN:         "Does your child stare at nothing with no apparent purpose?",
			TextAR:         "هل يحدق طفلك في لا شيء دون هدف واضح؟",
			Options:        frequencyOptions,
			ScoringOptions: reversedScoring,
			VideoPositive:  "/videos/Q10/positive.mp4",
			VideoNegative:  "/videos/Q10/negative.mp4",
		},
	}
}

// recommendations holds the canned report advice per language and risk level.
var recommendations = map[models.Language]map[models.RiskLevel][]string{
	models.LanguageEN: {
		models.RiskLevelHigh: {
			"Your child's score suggests a need for further evaluation.",
			"We recommend scheduling an appointment with a pediatrician or developmental specialist.",
			"Early intervention can make a significant difference in outcomes.",
			"Please bring this report to your healthcare provider.",
			"Consider asking for a referral to a multidisciplinary assessment team.",
		},
		models.RiskLevelLow: {
			"Your child's score is within the typical range.",
			"Continue to monitor your child's development.",
			"If you have ongoing concerns, discuss them with your pediatrician.",
			"Regular developmental checkups are important for all children.",
		},
	},
	models.LanguageAR: {
		models.RiskLevelHigh: {
			"تشير درجة طفلك إلى الحاجة لمزيد من التقييم.",
			"نوصي بتحديد موعد مع طبيب أطفال أو أخصائي تطور.",
			"التدخل المبكر يمكن أن يحدث فرقاً كبيراً في النتائج.",
			"يرجى إحضار هذا التقرير إلى مقدم الرعاية الصحية الخاص بك.",
			"فكر في طلب إحالة إلى فريق تقييم متعدد التخصصات.",
		},
		models.RiskLevelLow: {
			"درجة طفلك ضمن النطاق الطبيعي.",
			"استمر في مراقبة تطور طفلك.",
			"إذا كانت لديك مخاوف مستمرة، ناقشها مع طبيب الأطفال.",
			"الفحوصات التطورية المنتظمة مهمة لجميع الأطفال.",
		},
	},
}
