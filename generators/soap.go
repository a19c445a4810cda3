// Package generators builds the static medical reference datasets from
// their authored tables and serializes them to indented UTF-8 JSON
// files. All inputs are compile-time literals; output order follows
// authored order everywhere.
package generators

import (
	"fmt"
	"unicode/utf8"

	"github.com/archibaldedwards48-ship-it/medqc-datasets/generators/entities"
)

// soapDiseases is the authored disease list. Output records follow
// this order.
var soapDiseases = []string{
	"高血压", "2型糖尿病", "冠心病", "心力衰竭", "房颤", "脑梗死", "肺炎", "慢阻肺", "哮喘",
	"肝硬化", "消化性溃疡", "急性胰腺炎", "慢性肾病", "肾结石", "贫血", "甲亢", "痛风",
	"类风湿关节炎", "腰椎间盘突出", "骨折", "阑尾炎", "胆囊炎", "乳腺癌", "肺癌", "胃癌",
	"抑郁症", "癫痫", "帕金森病", "深静脉血栓", "败血症",
}

// placeholderIcdCode derives the synthetic code carried on SOAP
// templates from the first rune of the disease name and its rune
// count. The result is an opaque literal, never resolved against a
// real coding authority.
func placeholderIcdCode(disease string) string {
	first, _ := utf8.DecodeRuneInString(disease)
	return fmt.Sprintf("ICD-%c%d", first, utf8.RuneCountInString(disease))
}

// BuildSoapTemplates builds one SOAP note template per authored
// disease by interpolating the name into fixed sentence templates.
func BuildSoapTemplates() []entities.SoapTemplate {
	templates := make([]entities.SoapTemplate, 0, len(soapDiseases))

	for _, disease := range soapDiseases {
		templates = append(templates, entities.SoapTemplate{
			Disease:    disease,
			IcdCode:    placeholderIcdCode(disease),
			Subjective: disease + "相关主诉：例如头晕、头痛、乏力等，持续X天/月/年...",
			Objective:  disease + "相关客观检查：例如BP XXX/XXX mmHg，心率XX次/分，体温XX℃，实验室检查异常等...",
			Assessment: fmt.Sprintf("%s诊断评估：例如%sX级（极高危/高危/中危），病情稳定/进展/恶化...", disease, disease),
			Plan:       disease + "治疗计划：1. 药物调整 2. 生活方式干预 3. 定期复查 4. 健康教育...",
		})
	}

	return templates
}
