package generators

import (
	"github.com/archibaldedwards48-ship-it/medqc-datasets/generators/entities"
)

// codedDisease pairs a disease name with its ICD-10-style code.
// Ordered slices are used instead of maps so iteration order matches
// the authored table order.
type codedDisease struct {
	name string
	icd  string
}

// appendStagingSystem cross-products a disease table with the ordered
// stage levels of one staging system, emitting one record per
// (disease, stage) pair. Stage order is the authored severity order.
func appendStagingSystem(records []entities.StagingRecord, diseases []codedDisease, system, category string, stages []entities.StageDetail) []entities.StagingRecord {
	for _, d := range diseases {
		for _, stage := range stages {
			records = append(records, entities.StagingRecord{
				Disease:       d.name,
				IcdCode:       d.icd,
				StagingSystem: system,
				Stages:        []entities.StageDetail{stage},
				Category:      category,
			})
		}
	}
	return records
}

// BuildStagingRecords builds the full disease staging dataset across
// all authored classification systems, in authored system order.
func BuildStagingRecords() []entities.StagingRecord {
	var records []entities.StagingRecord

	// TNM 肿瘤分期
	tnmDiseases := []codedDisease{
		{"肺癌", "C34"},
		{"胃癌", "C16"},
		{"肝癌", "C22"},
		{"结直肠癌", "C18"},
		{"乳腺癌", "C50"},
		{"食管癌", "C15"},
		{"胰腺癌", "C25"},
		{"肾癌", "C64"},
		{"膀胱癌", "C67"},
		{"前列腺癌", "C61"},
		{"宫颈癌", "C53"},
		{"卵巢癌", "C56"},
		{"甲状腺癌", "C73"},
		{"黑色素瘤", "C43"},
		{"淋巴瘤", "C85"},
	}
	records = appendStagingSystem(records, tnmDiseases, "TNM", "肿瘤分期", []entities.StageDetail{
		{Stage: "I期", Criteria: "T1-2N0M0", Description: "肿瘤局限于原发器官，无淋巴结转移"},
		{Stage: "II期", Criteria: "T1-2N1M0 或 T3N0M0", Description: "肿瘤侵犯同侧淋巴结"},
		{Stage: "III期", Criteria: "T3-4N1-2M0", Description: "局部晚期，区域淋巴结广泛受累"},
		{Stage: "IV期", Criteria: "任何T任何NM1", Description: "远处转移"},
	})

	// NYHA 心功能分级
	nyhaDiseases := []codedDisease{
		{"心力衰竭", "I50"},
		{"风湿性心脏病", "I09"},
		{"扩张型心肌病", "I42.0"},
	}
	records = appendStagingSystem(records, nyhaDiseases, "NYHA", "心功能分级", []entities.StageDetail{
		{Stage: "I级", Criteria: "无症状，日常活动不受限", Description: "体力活动不受限制"},
		{Stage: "II级", Criteria: "日常活动轻度受限，休息时无症状", Description: "体力活动轻度受限"},
		{Stage: "III级", Criteria: "日常活动明显受限，休息时无症状", Description: "体力活动明显受限"},
		{Stage: "IV级", Criteria: "任何体力活动均引起症状，休息时亦有症状", Description: "不能进行任何体力活动"},
	})

	// CKD 慢性肾病分期
	ckdDiseases := []codedDisease{
		{"慢性肾病", "N18"},
		{"糖尿病肾病", "E10.2"},
		{"高血压肾病", "I12"},
	}
	records = appendStagingSystem(records, ckdDiseases, "CKD", "肾病分期", []entities.StageDetail{
		{Stage: "1期", Criteria: "GFR ≥ 90 mL/min/1.73m²", Description: "肾功能正常或升高，伴有肾损伤证据"},
		{Stage: "2期", Criteria: "GFR 60-89 mL/min/1.73m²", Description: "肾功能轻度下降，伴有肾损伤证据"},
		{Stage: "3期", Criteria: "GFR 30-59 mL/min/1.73m²", Description: "肾功能中度下降"},
		{Stage: "4期", Criteria: "GFR 15-29 mL/min/1.73m²", Description: "肾功能重度下降"},
		{Stage: "5期", Criteria: "GFR < 15 mL/min/1.73m² 或透析", Description: "终末期肾病"},
	})

	// COPD GOLD 分级
	records = appendStagingSystem(records, []codedDisease{{"慢性阻塞性肺疾病", "J44"}}, "GOLD", "肺病分级", []entities.StageDetail{
		{Stage: "I级 (轻度)", Criteria: "FEV1/FVC < 0.70 且 FEV1 ≥ 80% 预计值", Description: "轻度气流受限"},
		{Stage: "II级 (中度)", Criteria: "FEV1/FVC < 0.70 且 50% ≤ FEV1 < 80% 预计值", Description: "中度气流受限"},
		{Stage: "III级 (重度)", Criteria: "FEV1/FVC < 0.70 且 30% ≤ FEV1 < 50% 预计值", Description: "重度气流受限"},
		{Stage: "IV级 (极重度)", Criteria: "FEV1/FVC < 0.70 且 FEV1 < 30% 预计值 或 FEV1 < 50% 预计值伴慢性呼吸衰竭", Description: "极重度气流受限"},
	})

	// 肝硬化 Child-Pugh 分级
	childPughDiseases := []codedDisease{
		{"肝硬化", "K74"},
		{"肝衰竭", "K72"},
	}
	records = appendStagingSystem(records, childPughDiseases, "Child-Pugh", "肝病分级", []entities.StageDetail{
		{Stage: "A级", Criteria: "5-6分", Description: "肝功能代偿良好"},
		{Stage: "B级", Criteria: "7-9分", Description: "肝功能失代偿"},
		{Stage: "C级", Criteria: "10-15分", Description: "肝功能严重失代偿"},
	})

	// 高血压分级与危险分层
	records = appendStagingSystem(records, []codedDisease{{"高血压", "I10"}}, "分级", "心血管分级", []entities.StageDetail{
		{Stage: "1级", Criteria: "收缩压140-159 mmHg 或 舒张压90-99 mmHg", Description: "轻度高血压"},
		{Stage: "2级", Criteria: "收缩压160-179 mmHg 或 舒张压100-109 mmHg", Description: "中度高血压"},
		{Stage: "3级", Criteria: "收缩压≥180 mmHg 或 舒张压≥110 mmHg", Description: "重度高血压"},
	})
	records = appendStagingSystem(records, []codedDisease{{"高血压", "I10"}}, "危险分层", "心血管分级", []entities.StageDetail{
		{Stage: "低危", Criteria: "无靶器官损害，无糖尿病，无心血管疾病", Description: "未来10年心血管事件风险<15%"},
		{Stage: "中危", Criteria: "1-2个危险因素，无靶器官损害", Description: "未来10年心血管事件风险15-20%"},
		{Stage: "高危", Criteria: "≥3个危险因素 或 靶器官损害 或 糖尿病", Description: "未来10年心血管事件风险20-30%"},
		{Stage: "很高危", Criteria: "已有心血管疾病 或 糖尿病伴靶器官损害", Description: "未来10年心血管事件风险>30%"},
	})

	// 糖尿病并发症分期
	records = appendStagingSystem(records, []codedDisease{{"糖尿病视网膜病变", "E10.3"}}, "分期", "糖尿病并发症分期", []entities.StageDetail{
		{Stage: "非增殖期", Criteria: "微动脉瘤、出血、硬性渗出", Description: "早期病变"},
		{Stage: "增殖前期", Criteria: "棉絮斑、静脉串珠样改变", Description: "进展期病变"},
		{Stage: "增殖期", Criteria: "新生血管形成、玻璃体出血", Description: "晚期病变"},
	})
	records = appendStagingSystem(records, []codedDisease{{"糖尿病肾病", "E10.2"}}, "分期", "糖尿病并发症分期", []entities.StageDetail{
		{Stage: "I期", Criteria: "肾小球高滤过，肾脏肥大", Description: "早期功能亢进"},
		{Stage: "II期", Criteria: "正常白蛋白尿，肾脏病理改变", Description: "正常白蛋白尿期"},
		{Stage: "III期", Criteria: "微量白蛋白尿", Description: "早期肾病期"},
		{Stage: "IV期", Criteria: "临床白蛋白尿", Description: "临床肾病期"},
		{Stage: "V期", Criteria: "终末期肾病", Description: "终末期肾病"},
	})
	records = appendStagingSystem(records, []codedDisease{{"糖尿病周围神经病变", "E10.4"}}, "分期", "糖尿病并发症分期", []entities.StageDetail{
		{Stage: "无症状期", Criteria: "神经传导速度异常", Description: "无临床症状"},
		{Stage: "症状期", Criteria: "感觉异常、疼痛、麻木", Description: "出现临床症状"},
		{Stage: "并发症期", Criteria: "足溃疡、Charcot关节", Description: "出现严重并发症"},
	})

	// 烧伤分度
	records = appendStagingSystem(records, []codedDisease{{"烧伤", "T30"}}, "分度", "创伤分度", []entities.StageDetail{
		{Stage: "I度", Criteria: "红斑，无水疱", Description: "表皮损伤"},
		{Stage: "浅II度", Criteria: "水疱，基底潮红", Description: "真皮浅层损伤"},
		{Stage: "深II度", Criteria: "水疱，基底苍白，痛觉迟钝", Description: "真皮深层损伤"},
		{Stage: "III度", Criteria: "焦痂，无痛觉", Description: "全层皮肤损伤"},
	})

	// 骨折 AO 分型
	aoFractures := []codedDisease{
		{"股骨颈骨折", "S72.0"},
		{"股骨干骨折", "S72.3"},
		{"胫骨平台骨折", "S82.1"},
		{"踝关节骨折", "S82.8"},
		{"桡骨远端骨折", "S52.5"},
		{"肱骨近端骨折", "S42.2"},
		{"肱骨干骨折", "S42.3"},
		{"锁骨骨折", "S42.0"},
		{"脊柱压缩性骨折", "S32.0"},
		{"骨盆骨折", "S32.8"},
		{"股骨髁上骨折", "S72.4"},
		{"胫骨干骨折", "S82.2"},
		{"跟骨骨折", "S92.0"},
		{"舟骨骨折", "S62.0"},
		{"指骨骨折", "S62.6"},
	}
	records = appendStagingSystem(records, aoFractures, "AO分型", "骨折分型", []entities.StageDetail{
		{Stage: "A型", Criteria: "简单骨折", Description: "骨折线单一"},
		{Stage: "B型", Criteria: "楔形骨折", Description: "有中间骨块"},
		{Stage: "C型", Criteria: "复杂骨折", Description: "粉碎性骨折"},
	})

	// ECOG Performance Status
	records = appendStagingSystem(records, []codedDisease{{"肿瘤患者一般状况", "Z08.8"}}, "ECOG PS", "一般状况评分", []entities.StageDetail{
		{Stage: "0分", Criteria: "活动完全正常，无任何症状", Description: "完全活动"},
		{Stage: "1分", Criteria: "可自由活动，但不能从事重体力劳动", Description: "轻度症状"},
		{Stage: "2分", Criteria: "可自由活动，但不能从事任何工作，日间卧床时间少于50%", Description: "中度症状"},
		{Stage: "3分", Criteria: "日间卧床时间多于50%，但可生活自理", Description: "重度症状"},
		{Stage: "4分", Criteria: "完全卧床，生活不能自理", Description: "完全卧床"},
	})

	// Glasgow Coma Scale
	records = appendStagingSystem(records, []codedDisease{{"意识障碍", "R40.2"}}, "GCS", "神经功能评分", []entities.StageDetail{
		{Stage: "3-8分", Criteria: "重度意识障碍", Description: "昏迷"},
		{Stage: "9-12分", Criteria: "中度意识障碍", Description: "嗜睡或昏睡"},
		{Stage: "13-15分", Criteria: "轻度意识障碍", Description: "清醒或定向力障碍"},
	})

	// ASA Physical Status
	records = appendStagingSystem(records, []codedDisease{{"麻醉风险评估", "Z01.8"}}, "ASA PS", "麻醉风险评估", []entities.StageDetail{
		{Stage: "I级", Criteria: "健康患者", Description: "无系统性疾病"},
		{Stage: "II级", Criteria: "轻度系统性疾病", Description: "如轻度高血压、糖尿病"},
		{Stage: "III级", Criteria: "重度系统性疾病", Description: "如控制不佳的高血压、糖尿病"},
		{Stage: "IV级", Criteria: "危及生命的重度系统性疾病", Description: "如不稳定心绞痛、重度COPD"},
		{Stage: "V级", Criteria: "濒死患者", Description: "预计24小时内死亡"},
		{Stage: "VI级", Criteria: "脑死亡患者", Description: "器官捐献者"},
	})

	// Forrest 消化性溃疡出血分级
	records = appendStagingSystem(records, []codedDisease{{"消化性溃疡出血", "K27.4"}}, "Forrest", "消化道出血分级", []entities.StageDetail{
		{Stage: "Ia", Criteria: "活动性喷射状出血", Description: "高危"},
		{Stage: "Ib", Criteria: "活动性渗血", Description: "高危"},
		{Stage: "IIa", Criteria: "非活动性可见血管", Description: "中危"},
		{Stage: "IIb", Criteria: "非活动性附着血凝块", Description: "中危"},
		{Stage: "IIc", Criteria: "非活动性黑色斑点基底", Description: "低危"},
		{Stage: "III", Criteria: "清洁基底", Description: "低危"},
	})

	// Modified Rankin Scale 卒中功能预后
	records = appendStagingSystem(records, []codedDisease{{"脑卒中功能预后", "I63"}}, "mRS", "神经功能评分", []entities.StageDetail{
		{Stage: "0分", Criteria: "无症状", Description: "完全恢复"},
		{Stage: "1分", Criteria: "无明显残疾", Description: "能够完成所有日常活动"},
		{Stage: "2分", Criteria: "轻度残疾", Description: "不能完成所有病前活动，但可独立生活"},
		{Stage: "3分", Criteria: "中度残疾", Description: "需要一些帮助，但无需他人持续照护"},
		{Stage: "4分", Criteria: "中重度残疾", Description: "需要持续照护，不能独立行走或生活"},
		{Stage: "5分", Criteria: "重度残疾", Description: "卧床不起，大小便失禁，需要持续护理"},
		{Stage: "6分", Criteria: "死亡", Description: "死亡"},
	})

	return records
}
