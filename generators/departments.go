package generators

import (
	"github.com/archibaldedwards48-ship-it/medqc-datasets/generators/entities"
)

// BuildDepartments builds the hospital department mapping dataset.
// Each definition is emitted unmodified, in authored order; no
// cross-department aggregation is performed.
func BuildDepartments() []entities.Department {
	return []entities.Department{
		{
			DepartmentCode:      "ICU",
			DepartmentName:      "重症医学科",
			Aliases:             []string{"ICU", "重症监护室", "MICU", "SICU"},
			Category:            "急危重症",
			Wards:               []string{"ICU-A区", "ICU-B区"},
			BedCount:            30,
			SpecialRequirements: []string{"24小时监护", "呼吸机管理", "CRRT"},
		},
		{
			DepartmentCode:      "ER",
			DepartmentName:      "急诊科",
			Aliases:             []string{"急诊", "急诊室"},
			Category:            "急危重症",
			Wards:               []string{"急诊抢救室", "急诊观察室"},
			BedCount:            20,
			SpecialRequirements: []string{"快速诊断", "紧急处理", "多学科协作"},
		},
		{
			DepartmentCode:      "CARD",
			DepartmentName:      "心血管内科",
			Aliases:             []string{"心内科", "心内"},
			Category:            "内科系统",
			Wards:               []string{"心内一病区", "心内二病区"},
			BedCount:            60,
			SpecialRequirements: []string{"心电监护", "介入治疗", "心脏康复"},
		},
		{
			DepartmentCode:      "RESP",
			DepartmentName:      "呼吸内科",
			Aliases:             []string{"呼吸科", "呼吸"},
			Category:            "内科系统",
			Wards:               []string{"呼吸一病区", "呼吸二病区"},
			BedCount:            55,
			SpecialRequirements: []string{"呼吸机支持", "支气管镜", "肺功能检查"},
		},
		{
			DepartmentCode:      "GASTRO",
			DepartmentName:      "消化内科",
			Aliases:             []string{"消化科", "消化"},
			Category:            "内科系统",
			Wards:               []string{"消化一病区", "消化二病区"},
			BedCount:            50,
			SpecialRequirements: []string{"胃肠镜", "肝穿刺", "内镜下治疗"},
		},
		{
			DepartmentCode:      "NEPHRO",
			DepartmentName:      "肾脏内科",
			Aliases:             []string{"肾内科", "肾内"},
			Category:            "内科系统",
			Wards:               []string{"肾内病区"},
			BedCount:            40,
			SpecialRequirements: []string{"血液透析", "腹膜透析", "肾活检"},
		},
		{
			DepartmentCode:      "ENDO",
			DepartmentName:      "内分泌科",
			Aliases:             []string{"内分泌"},
			Category:            "内科系统",
			Wards:               []string{"内分泌病区"},
			BedCount:            45,
			SpecialRequirements: []string{"血糖管理", "甲状腺功能评估", "骨密度检查"},
		},
		{
			DepartmentCode:      "HEMA",
			DepartmentName:      "血液内科",
			Aliases:             []string{"血液科"},
			Category:            "内科系统",
			Wards:               []string{"血液病区"},
			BedCount:            35,
			SpecialRequirements: []string{"骨髓穿刺", "化疗", "造血干细胞移植"},
		},
		{
			DepartmentCode:      "RHEUM",
			DepartmentName:      "风湿免疫科",
			Aliases:             []string{"风湿科"},
			Category:            "内科系统",
			Wards:               []string{"风湿免疫病区"},
			BedCount:            30,
			SpecialRequirements: []string{"免疫抑制剂治疗", "关节腔穿刺"},
		},
		{
			DepartmentCode:      "NEURO",
			DepartmentName:      "神经内科",
			Aliases:             []string{"神内科", "神内"},
			Category:            "内科系统",
			Wards:               []string{"神内一病区", "神内二病区"},
			BedCount:            60,
			SpecialRequirements: []string{"脑电图", "肌电图", "神经康复"},
		},
		{
			DepartmentCode:      "INFECT",
			DepartmentName:      "感染科",
			Aliases:             []string{"传染科"},
			Category:            "内科系统",
			Wards:               []string{"感染病区"},
			BedCount:            30,
			SpecialRequirements: []string{"隔离管理", "抗感染治疗"},
		},
		{
			DepartmentCode:      "GSURG",
			DepartmentName:      "普通外科",
			Aliases:             []string{"普外科", "普外"},
			Category:            "外科系统",
			Wards:               []string{"普外一病区", "普外二病区"},
			BedCount:            70,
			SpecialRequirements: []string{"腹腔镜手术", "胃肠道手术", "甲状腺手术"},
		},
		{
			DepartmentCode:      "ORTHO",
			DepartmentName:      "骨科",
			Aliases:             []string{"骨外科"},
			Category:            "外科系统",
			Wards:               []string{"骨科一病区", "骨科二病区"},
			BedCount:            80,
			SpecialRequirements: []string{"关节置换", "脊柱手术", "创伤修复"},
		},
		{
			DepartmentCode:      "CTS",
			DepartmentName:      "心胸外科",
			Aliases:             []string{"胸外科", "心外科"},
			Category:            "外科系统",
			Wards:               []string{"心胸外科病区"},
			BedCount:            40,
			SpecialRequirements: []string{"心脏搭桥", "肺叶切除", "食管癌手术"},
		},
		{
			DepartmentCode:      "URO",
			DepartmentName:      "泌尿外科",
			Aliases:             []string{"泌外"},
			Category:            "外科系统",
			Wards:               []string{"泌尿外科病区"},
			BedCount:            45,
			SpecialRequirements: []string{"肾移植", "膀胱镜", "前列腺手术"},
		},
		{
			DepartmentCode:      "NSURG",
			DepartmentName:      "神经外科",
			Aliases:             []string{"神外科", "神外"},
			Category:            "外科系统",
			Wards:               []string{"神经外科病区"},
			BedCount:            50,
			SpecialRequirements: []string{"脑肿瘤切除", "脑血管介入", "脊髓手术"},
		},
		{
			DepartmentCode:      "PLAST",
			DepartmentName:      "烧伤整形科",
			Aliases:             []string{"整形外科"},
			Category:            "外科系统",
			Wards:               []string{"烧伤病区", "整形病区"},
			BedCount:            30,
			SpecialRequirements: []string{"烧伤治疗", "皮肤移植", "美容整形"},
		},
		{
			DepartmentCode:      "OBGYN",
			DepartmentName:      "妇产科",
			Aliases:             []string{"妇科", "产科"},
			Category:            "妇产科",
			Wards:               []string{"妇科病区", "产科病区"},
			BedCount:            60,
			SpecialRequirements: []string{"分娩", "妇科肿瘤手术", "产前检查"},
		},
		{
			DepartmentCode:      "PED",
			DepartmentName:      "儿科",
			Aliases:             []string{"儿内科", "儿外科"},
			Category:            "儿科",
			Wards:               []string{"儿科病区", "新生儿病区"},
			BedCount:            50,
			SpecialRequirements: []string{"儿童常见病", "新生儿监护", "儿童保健"},
		},
		{
			DepartmentCode:      "OPHTH",
			DepartmentName:      "眼科",
			Aliases:             []string{"眼耳鼻喉科"},
			Category:            "五官科",
			Wards:               []string{"眼科病区"},
			BedCount:            25,
			SpecialRequirements: []string{"白内障手术", "眼底检查", "激光治疗"},
		},
		{
			DepartmentCode:      "ENT",
			DepartmentName:      "耳鼻咽喉科",
			Aliases:             []string{"耳鼻喉科"},
			Category:            "五官科",
			Wards:               []string{"耳鼻喉科病区"},
			BedCount:            25,
			SpecialRequirements: []string{"听力检查", "鼻内镜手术", "扁桃体切除"},
		},
		{
			DepartmentCode:      "ORAL",
			DepartmentName:      "口腔科",
			Aliases:             []string{"口腔颌面外科"},
			Category:            "五官科",
			Wards:               []string{"口腔科病区"},
			BedCount:            20,
			SpecialRequirements: []string{"牙齿种植", "颌面部手术", "口腔修复"},
		},
		{
			DepartmentCode:      "DERM",
			DepartmentName:      "皮肤科",
			Aliases:             []string{"皮肤性病科"},
			Category:            "其他",
			Wards:               []string{"皮肤科病区"},
			BedCount:            15,
			SpecialRequirements: []string{"皮肤病诊断", "激光治疗", "皮肤活检"},
		},
		{
			DepartmentCode:      "TCM",
			DepartmentName:      "中医科",
			Aliases:             []string{"中西医结合科"},
			Category:            "其他",
			Wards:               []string{"中医科病区"},
			BedCount:            20,
			SpecialRequirements: []string{"中医辨证", "针灸", "中药治疗"},
		},
		{
			DepartmentCode:      "REHAB",
			DepartmentName:      "康复医学科",
			Aliases:             []string{"康复科"},
			Category:            "其他",
			Wards:               []string{"康复病区"},
			BedCount:            30,
			SpecialRequirements: []string{"物理治疗", "作业治疗", "言语治疗"},
		},
		{
			DepartmentCode:      "ONCO",
			DepartmentName:      "肿瘤科",
			Aliases:             []string{"肿瘤内科", "肿瘤外科"},
			Category:            "其他",
			Wards:               []string{"肿瘤一病区", "肿瘤二病区"},
			BedCount:            50,
			SpecialRequirements: []string{"化疗", "放疗", "靶向治疗"},
		},
		{
			DepartmentCode:      "GERI",
			DepartmentName:      "老年医学科",
			Aliases:             []string{"老年科"},
			Category:            "其他",
			Wards:               []string{"老年病区"},
			BedCount:            30,
			SpecialRequirements: []string{"老年综合评估", "多重用药管理"},
		},
		{
			DepartmentCode:      "PSYCH",
			DepartmentName:      "精神医学科",
			Aliases:             []string{"精神科"},
			Category:            "其他",
			Wards:               []string{"精神科病区"},
			BedCount:            40,
			SpecialRequirements: []string{"心理治疗", "药物治疗", "电休克治疗"},
		},
		{
			DepartmentCode:      "ANESTH",
			DepartmentName:      "麻醉科",
			Aliases:             []string{"麻醉"},
			Category:            "其他",
			Wards:               []string{"麻醉恢复室"},
			BedCount:            10,
			SpecialRequirements: []string{"术中麻醉管理", "疼痛管理"},
		},
		{
			DepartmentCode:      "PATH",
			DepartmentName:      "病理科",
			Aliases:             []string{"病理"},
			Category:            "其他",
			Wards:               []string{},
			BedCount:            0,
			SpecialRequirements: []string{"组织病理诊断", "细胞学诊断"},
		},
		{
			DepartmentCode:      "RADI",
			DepartmentName:      "放射科",
			Aliases:             []string{"影像科"},
			Category:            "其他",
			Wards:               []string{},
			BedCount:            0,
			SpecialRequirements: []string{"X线", "CT", "MRI", "超声"},
		},
		{
			DepartmentCode:      "LAB",
			DepartmentName:      "检验科",
			Aliases:             []string{"化验室"},
			Category:            "其他",
			Wards:               []string{},
			BedCount:            0,
			SpecialRequirements: []string{"血液检验", "生化检验", "免疫检验"},
		},
	}
}
